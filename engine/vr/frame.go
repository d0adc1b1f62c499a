package vr

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameParams are the per-eye inputs of a frame that do not come from the tracker.
type FrameParams struct {
	Eye   Eye
	Near  float32
	Far   float32
	Depth common.DepthRange
}

// Validate checks the eye identity and clip planes.
func (p FrameParams) Validate() error {
	if !p.Eye.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidEye, int(p.Eye))
	}
	if p.Near <= 0 || p.Far <= p.Near {
		return fmt.Errorf("%w: near=%v far=%v", ErrInvalidClipPlanes, p.Near, p.Far)
	}
	return nil
}

// FrameState is the complete camera state of one eye for one frame.
// It is a value: a new FrameState is produced every frame and never mutated afterwards.
type FrameState struct {
	Eye  Eye
	Near float32
	Far  float32

	Position  mgl32.Vec3 // headset position
	Direction mgl32.Vec3 // headset forward, not negated
	Up        mgl32.Vec3

	// EyePosition is the world-space optical center of this eye.
	EyePosition mgl32.Vec3

	Projection  mgl32.Mat4
	EyeSpace    mgl32.Mat4 // eye-to-head
	InvEyeSpace mgl32.Mat4
	View        mgl32.Mat4 // world-to-head
	Combined    mgl32.Mat4 // Projection * InvEyeSpace * View

	// InvCombined and Frustum are only meaningful when FrustumValid is set.
	InvCombined  mgl32.Mat4
	Frustum      common.Frustum
	FrustumValid bool
}

// ComputeFrame queries the runtime for the eye's projection and eye-to-head transform and
// composes them with the headset pose. The frustum is not derived; see DeriveFrustum.
//
// Parameters:
//   - rt: the VR runtime to query
//   - params: eye identity, clip planes and depth convention
//   - pose: the headset pose in world space
//
// Returns:
//   - FrameState: the new frame state
//   - error: a validation, runtime or inversion failure
func ComputeFrame(rt Runtime, params FrameParams, pose Pose) (FrameState, error) {
	if err := params.Validate(); err != nil {
		return FrameState{}, err
	}
	projection, err := QueryProjection(rt, params)
	if err != nil {
		return FrameState{}, err
	}
	eyeSpace, err := QueryEyeSpace(rt, params.Eye)
	if err != nil {
		return FrameState{}, err
	}
	return ComposeFrame(params, pose, projection, eyeSpace)
}

// QueryProjection fetches and converts the eye's projection matrix.
func QueryProjection(rt Runtime, params FrameParams) (mgl32.Mat4, error) {
	h, err := rt.ProjectionMatrix(params.Eye, params.Near, params.Far)
	if err != nil {
		return mgl32.Mat4{}, fmt.Errorf("query %s eye projection: %w", params.Eye, err)
	}
	return h.Mat4(), nil
}

// QueryEyeSpace fetches and converts the eye-to-head transform.
func QueryEyeSpace(rt Runtime, eye Eye) (mgl32.Mat4, error) {
	h, err := rt.EyeToHeadTransform(eye)
	if err != nil {
		return mgl32.Mat4{}, fmt.Errorf("query %s eye-to-head transform: %w", eye, err)
	}
	return h.Mat4(), nil
}

// ComposeFrame builds a FrameState from already converted runtime matrices.
// combined = projection * inverse(eyeSpace) * inverse(pose.BasisMatrix()).
//
// Parameters:
//   - params: eye identity, clip planes and depth convention
//   - pose: the headset pose in world space
//   - projection: the eye's projection matrix (column-major)
//   - eyeSpace: the eye-to-head transform (column-major)
//
// Returns:
//   - FrameState: the new frame state without a frustum
//   - error: ErrSingularMatrix or ErrDegeneratePose when an inverse does not exist
func ComposeFrame(params FrameParams, pose Pose, projection, eyeSpace mgl32.Mat4) (FrameState, error) {
	invEyeSpace, ok := common.Invert4(eyeSpace)
	if !ok {
		return FrameState{}, fmt.Errorf("invert %s eye space: %w", params.Eye, ErrSingularMatrix)
	}

	basis := pose.BasisMatrix()
	view, ok := common.Invert4(basis)
	if !ok {
		return FrameState{}, fmt.Errorf("invert headset basis: %w", ErrDegeneratePose)
	}

	return FrameState{
		Eye:         params.Eye,
		Near:        params.Near,
		Far:         params.Far,
		Position:    pose.Position,
		Direction:   pose.Forward,
		Up:          pose.Up,
		EyePosition: common.TransformPoint(common.MulChain(basis, eyeSpace), mgl32.Vec3{}),
		Projection:  projection,
		EyeSpace:    eyeSpace,
		InvEyeSpace: invEyeSpace,
		View:        view,
		Combined:    common.MulChain(projection, invEyeSpace, view),
	}, nil
}

// DeriveFrustum returns s with its inverse combined matrix and frustum planes filled in.
//
// Parameters:
//   - s: the frame state to derive from
//   - depth: the clip-space depth convention of s.Projection
//
// Returns:
//   - FrameState: s with InvCombined, Frustum and FrustumValid set
//   - error: ErrSingularMatrix if the combined matrix is not invertible
func DeriveFrustum(s FrameState, depth common.DepthRange) (FrameState, error) {
	inv, ok := common.Invert4(s.Combined)
	if !ok {
		return s, fmt.Errorf("invert %s eye combined matrix: %w", s.Eye, ErrSingularMatrix)
	}
	s.InvCombined = inv
	s.Frustum = common.FrustumFromInverse(inv, depth)
	s.FrustumValid = true
	return s, nil
}

// Uniform packs the frame's combined matrix and eye position for GPU upload.
func (s FrameState) Uniform() GPUEyeUniform {
	return GPUEyeUniform{
		Combined:    [16]float32(s.Combined),
		EyePosition: [3]float32(s.EyePosition),
	}
}
