package vr

// Runtime is the per-eye hardware query surface of a VR runtime.
// Implementations used with parallel eye updates must be safe for concurrent calls.
type Runtime interface {
	// ProjectionMatrix returns the eye's projection for the given clip planes.
	//
	// Parameters:
	//   - eye: the eye to query
	//   - near, far: clip plane distances
	//
	// Returns:
	//   - HmdMatrix44: the row-major projection matrix
	//   - error: a runtime failure, if any
	ProjectionMatrix(eye Eye, near, far float32) (HmdMatrix44, error)

	// EyeToHeadTransform returns the rigid transform from the eye's optical center to the head.
	//
	// Parameters:
	//   - eye: the eye to query
	//
	// Returns:
	//   - HmdMatrix34: the row-major eye-to-head transform
	//   - error: a runtime failure, if any
	EyeToHeadTransform(eye Eye) (HmdMatrix34, error)
}

// Tracker supplies the current pose of a tracked device.
type Tracker interface {
	// TrackedPose returns the latest pose of the first device of the given type.
	// Implementations return an error wrapping ErrPoseUnavailable when no valid pose exists.
	//
	// Parameters:
	//   - device: the device type to look up
	//   - space: the space the pose is expressed in
	//
	// Returns:
	//   - Pose: the device pose
	//   - error: ErrPoseUnavailable or a tracker failure
	TrackedPose(device DeviceType, space Space) (Pose, error)
}
