package vr

import (
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// randomPose returns an orthonormal pose with a random orientation and a position within 5m of the origin on each axis.
func randomPose(r *rand.Rand) Pose {
	axis := mgl32.Vec3{r.Float32()*2 - 1, r.Float32()*2 - 1, r.Float32()*2 - 1}
	if axis.Len() < 1e-3 {
		axis = mgl32.Vec3{0, 1, 0}
	}
	rot := mgl32.QuatRotate(r.Float32()*2*3.14159265, axis.Normalize()).Mat4()
	return Pose{
		Right:    rot.Col(0).Vec3(),
		Up:       rot.Col(1).Vec3(),
		Forward:  rot.Col(2).Vec3().Mul(-1),
		Position: mgl32.Vec3{r.Float32()*10 - 5, r.Float32()*10 - 5, r.Float32()*10 - 5},
	}
}

func newRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(42, 1024))
}

// fixedRuntime reports the same matrices for both eyes and counts queries.
type fixedRuntime struct {
	projection mgl32.Mat4
	eyeSpace   mgl32.Mat4
	err        error

	projectionCalls atomic.Int32
	eyeSpaceCalls   atomic.Int32
}

var errRuntimeDown = errors.New("runtime not initialized")

func newFixedRuntime(projection, eyeSpace mgl32.Mat4) *fixedRuntime {
	return &fixedRuntime{projection: projection, eyeSpace: eyeSpace}
}

func (f *fixedRuntime) ProjectionMatrix(_ Eye, _, _ float32) (HmdMatrix44, error) {
	f.projectionCalls.Add(1)
	if f.err != nil {
		return HmdMatrix44{}, f.err
	}
	return HmdMatrix44From(f.projection), nil
}

func (f *fixedRuntime) EyeToHeadTransform(_ Eye) (HmdMatrix34, error) {
	f.eyeSpaceCalls.Add(1)
	if f.err != nil {
		return HmdMatrix34{}, f.err
	}
	return HmdMatrix34From(f.eyeSpace), nil
}

// assertMat4InDelta compares matrices element-wise with an absolute tolerance.
func assertMat4InDelta(t *testing.T, want, got mgl32.Mat4, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}
