package vr

import "github.com/Carmen-Shannon/oxy-vr/common"

type EyeCameraBuilderOption func(*eyeCameraImpl)

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - EyeCameraBuilderOption: a function that sets the near plane
func WithNear(near float32) EyeCameraBuilderOption {
	return func(c *eyeCameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - EyeCameraBuilderOption: a function that sets the far plane
func WithFar(far float32) EyeCameraBuilderOption {
	return func(c *eyeCameraImpl) {
		c.far = far
	}
}

// WithDepthRange sets the clip-space depth convention the runtime's projection maps into.
// It decides which clip-space cube is unprojected when deriving frustum planes.
//
// Parameters:
//   - depth: the depth convention, DepthZeroToOne by default
//
// Returns:
//   - EyeCameraBuilderOption: a function that sets the depth convention
func WithDepthRange(depth common.DepthRange) EyeCameraBuilderOption {
	return func(c *eyeCameraImpl) {
		c.depth = depth
	}
}

// WithEyeSpaceCache enables reuse of the first successfully queried eye-to-head transform.
// The transform is fixed per eye for a session, so the per-frame runtime query can be skipped.
//
// Parameters:
//   - enabled: true to cache the eye-to-head transform
//
// Returns:
//   - EyeCameraBuilderOption: a function that toggles eye space caching
func WithEyeSpaceCache(enabled bool) EyeCameraBuilderOption {
	return func(c *eyeCameraImpl) {
		c.cacheEyeSpace = enabled
	}
}
