package vr

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultParams(eye Eye) FrameParams {
	return FrameParams{Eye: eye, Near: 0.1, Far: 100, Depth: common.DepthZeroToOne}
}

func TestViewMapsPosePositionToOrigin(t *testing.T) {
	r := newRand(t)
	rt := NewSimulatedRuntime()
	for range 200 {
		pose := randomPose(r)
		require.True(t, pose.Orthonormal(1e-5))

		state, err := ComputeFrame(rt, defaultParams(EyeLeft), pose)
		require.NoError(t, err)

		origin := common.TransformPoint(state.View, pose.Position)
		assert.InDeltaSlice(t, []float32{0, 0, 0}, origin[:], 1e-4)
		assertMat4InDelta(t, mgl32.Ident4(), state.View.Mul4(pose.BasisMatrix()), 1e-4,
			"view * basis != identity for %+v", pose)
	}
}

func TestCombinedIsProjectionInvEyeSpaceView(t *testing.T) {
	r := newRand(t)
	rt := NewSimulatedRuntime(WithIPD(0.07), WithEyeRelief(0.01))
	for range 50 {
		pose := randomPose(r)
		for _, eye := range Eyes {
			state, err := ComputeFrame(rt, defaultParams(eye), pose)
			require.NoError(t, err)

			want := state.Projection.Mul4(state.InvEyeSpace).Mul4(state.View)
			assert.Equal(t, want, state.Combined)
			assertMat4InDelta(t, mgl32.Ident4(), state.EyeSpace.Mul4(state.InvEyeSpace), 1e-6)
		}
	}
}

func TestComposeFrameStandingPose(t *testing.T) {
	pose := Pose{
		Right:    mgl32.Vec3{1, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Forward:  mgl32.Vec3{0, 0, -1},
		Position: mgl32.Vec3{0, 1.6, 0},
	}
	projection := mgl32.Ident4()

	state, err := ComposeFrame(defaultParams(EyeLeft), pose, projection, mgl32.Ident4())
	require.NoError(t, err)

	assertMat4InDelta(t, mgl32.Translate3D(0, -1.6, 0), state.View, 1e-6)
	origin := common.TransformPoint(state.View, pose.Position)
	assert.InDeltaSlice(t, []float32{0, 0, 0}, origin[:], 1e-6)
	assert.Equal(t, projection.Mul4(state.View), state.Combined)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, state.Direction)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, state.Up)
	assert.Equal(t, pose.Position, state.Position)

	// At the tracking origin view and eye space both reduce to identity.
	pose.Position = mgl32.Vec3{}
	state, err = ComposeFrame(defaultParams(EyeLeft), pose, projection, mgl32.Ident4())
	require.NoError(t, err)
	assertMat4InDelta(t, projection, state.Combined, 1e-7)
}

func TestDirectionIsNotNegated(t *testing.T) {
	pose := IdentityPose().Transformed(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	state, err := ComposeFrame(defaultParams(EyeLeft), pose, mgl32.Ident4(), mgl32.Ident4())
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float32{-1, 0, 0}, state.Direction[:], 1e-6)
	// A point ahead of the headset lands on the -Z axis of view space.
	ahead := common.TransformPoint(state.View, pose.Position.Add(pose.Forward.Mul(3)))
	assert.InDeltaSlice(t, []float32{0, 0, -3}, ahead[:], 1e-5)
}

func TestEyePositionFollowsEyeSpace(t *testing.T) {
	rt := NewSimulatedRuntime(WithIPD(0.064))
	left, err := ComputeFrame(rt, defaultParams(EyeLeft), IdentityPose())
	require.NoError(t, err)
	right, err := ComputeFrame(rt, defaultParams(EyeRight), IdentityPose())
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float32{-0.032, 0, 0}, left.EyePosition[:], 1e-6)
	assert.InDeltaSlice(t, []float32{0.032, 0, 0}, right.EyePosition[:], 1e-6)
	assert.Equal(t, left.Position, right.Position)
}

func TestComputeFrameErrors(t *testing.T) {
	rt := NewSimulatedRuntime()

	_, err := ComputeFrame(rt, FrameParams{Eye: EyeLeft, Near: 0, Far: 10}, IdentityPose())
	assert.ErrorIs(t, err, ErrInvalidClipPlanes)

	_, err = ComputeFrame(rt, FrameParams{Eye: EyeLeft, Near: 10, Far: 10}, IdentityPose())
	assert.ErrorIs(t, err, ErrInvalidClipPlanes)

	_, err = ComputeFrame(rt, FrameParams{Eye: Eye(5), Near: 0.1, Far: 10}, IdentityPose())
	assert.ErrorIs(t, err, ErrInvalidEye)

	_, err = ComputeFrame(rt, defaultParams(EyeRight), Pose{})
	assert.ErrorIs(t, err, ErrDegeneratePose)

	down := newFixedRuntime(mgl32.Ident4(), mgl32.Ident4())
	down.err = errRuntimeDown
	_, err = ComputeFrame(down, defaultParams(EyeLeft), IdentityPose())
	assert.ErrorIs(t, err, errRuntimeDown)
	assert.Contains(t, err.Error(), "left eye projection")

	singular := newFixedRuntime(mgl32.Ident4(), mgl32.Scale3D(0, 1, 1))
	_, err = ComputeFrame(singular, defaultParams(EyeLeft), IdentityPose())
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestDeriveFrustum(t *testing.T) {
	rt := NewSimulatedRuntime()
	state, err := ComputeFrame(rt, defaultParams(EyeLeft), IdentityPose())
	require.NoError(t, err)
	assert.False(t, state.FrustumValid)

	state, err = DeriveFrustum(state, common.DepthZeroToOne)
	require.NoError(t, err)
	assert.True(t, state.FrustumValid)
	assertMat4InDelta(t, mgl32.Ident4(), state.Combined.Mul4(state.InvCombined), 1e-4)

	_, err = DeriveFrustum(FrameState{Eye: EyeRight}, common.DepthZeroToOne)
	assert.True(t, errors.Is(err, ErrSingularMatrix))
}

func TestUniformLayout(t *testing.T) {
	rt := NewSimulatedRuntime()
	pose := IdentityPose()
	pose.Position = mgl32.Vec3{1, 2, 3}
	state, err := ComputeFrame(rt, defaultParams(EyeRight), pose)
	require.NoError(t, err)

	u := state.Uniform()
	buf := u.Marshal()
	assert.Equal(t, 80, u.Size())
	assert.Len(t, buf, 80)
	assert.Equal(t, [16]float32(state.Combined), u.Combined)
	assert.Equal(t, [3]float32(state.EyePosition), u.EyePosition)
	assert.Contains(t, GPUEyeUniformSource, "eye_position: vec3<f32>")
}
