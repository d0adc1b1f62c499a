package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert4(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DX(0.7))
	inv, ok := Invert4(m)
	require.True(t, ok)
	ident := mgl32.Ident4()
	product := m.Mul4(inv)
	assert.InDeltaSlice(t, ident[:], product[:], 1e-5)

	inv, ok = Invert4(mgl32.Mat4{})
	assert.False(t, ok)
	assert.Equal(t, mgl32.Ident4(), inv)
}

func TestMulChainOrder(t *testing.T) {
	translate := mgl32.Translate3D(1, 0, 0)
	scale := mgl32.Scale3D(2, 2, 2)

	// scale is applied first, then translate
	p := TransformPoint(MulChain(translate, scale), mgl32.Vec3{1, 1, 1})
	assert.Equal(t, mgl32.Vec3{3, 2, 2}, p)

	assert.Equal(t, mgl32.Ident4(), MulChain())
}

func TestBasisMatrix(t *testing.T) {
	m := BasisMatrix(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{5, 6, 7})
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 0}, m.Col(0))
	assert.Equal(t, mgl32.Vec4{-1, 0, 0, 0}, m.Col(2))
	assert.Equal(t, mgl32.Vec4{5, 6, 7, 1}, m.Col(3))
}

func TestProjectionFromTangentsDepth(t *testing.T) {
	const near, far = 0.1, 50.0
	tests := []struct {
		name  string
		depth DepthRange
	}{
		{"zero to one", DepthZeroToOne},
		{"neg one to one", DepthNegOneToOne},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ProjectionFromTangents(-1, 1, -1, 1, near, far, tt.depth)
			assert.InDelta(t, tt.depth.MinZ(), TransformPoint(p, mgl32.Vec3{0, 0, -near})[2], 1e-5)
			assert.InDelta(t, 1, TransformPoint(p, mgl32.Vec3{0, 0, -far})[2], 1e-5)

			edge := TransformPoint(p, mgl32.Vec3{2, -2, -2})
			assert.InDelta(t, 1, edge[0], 1e-6)
			assert.InDelta(t, -1, edge[1], 1e-6)
		})
	}
}

func TestProjectionFromTangentsOffAxis(t *testing.T) {
	p := ProjectionFromTangents(-0.5, 1.5, -1, 1, 1, 10, DepthZeroToOne)
	assert.InDelta(t, -1, TransformPoint(p, mgl32.Vec3{-0.5, 0, -1})[0], 1e-6)
	assert.InDelta(t, 1, TransformPoint(p, mgl32.Vec3{1.5, 0, -1})[0], 1e-6)
}

func TestTangentsFromFov(t *testing.T) {
	l, r, b, top := TangentsFromFov(mgl32.DegToRad(90), 2)
	assert.InDelta(t, -2, l, 1e-6)
	assert.InDelta(t, 2, r, 1e-6)
	assert.InDelta(t, -1, b, 1e-6)
	assert.InDelta(t, 1, top, 1e-6)
}

func TestDepthRangeString(t *testing.T) {
	assert.Equal(t, "zero_to_one", DepthZeroToOne.String())
	assert.Equal(t, "neg_one_to_one", DepthNegOneToOne.String())
	assert.Equal(t, "unknown", DepthRange(7).String())
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, float32(2), Coalesce[float32](0, 2, 3))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
