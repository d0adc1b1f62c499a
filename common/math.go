package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DepthRange selects the clip-space depth convention a projection matrix maps into.
type DepthRange int

const (
	// DepthZeroToOne maps the near plane to z=0 and the far plane to z=1 (WebGPU, Direct3D, OpenVR).
	DepthZeroToOne DepthRange = iota
	// DepthNegOneToOne maps the near plane to z=-1 and the far plane to z=1 (OpenGL).
	DepthNegOneToOne
)

// String returns the configuration name of the depth range.
func (d DepthRange) String() string {
	switch d {
	case DepthZeroToOne:
		return "zero_to_one"
	case DepthNegOneToOne:
		return "neg_one_to_one"
	default:
		return "unknown"
	}
}

// MinZ returns the clip-space depth of the near plane for this convention.
//
// Returns:
//   - float32: 0 for DepthZeroToOne, -1 for DepthNegOneToOne
func (d DepthRange) MinZ() float32 {
	if d == DepthNegOneToOne {
		return -1
	}
	return 0
}

// singularEpsilon is the determinant magnitude below which a matrix is treated as singular.
const singularEpsilon = 1e-12

// Invert4 computes the inverse of a 4x4 column-major matrix.
// If the matrix is singular (|determinant| below a small epsilon) the identity is returned with false.
//
// Parameters:
//   - m: source matrix (column-major)
//
// Returns:
//   - mgl32.Mat4: the inverse of m
//   - bool: true if the matrix was successfully inverted, false if singular
func Invert4(m mgl32.Mat4) (mgl32.Mat4, bool) {
	det := m.Det()
	if math.Abs(float64(det)) < singularEpsilon || math.IsNaN(float64(det)) {
		return mgl32.Ident4(), false
	}
	return m.Inv(), true
}

// MulChain multiplies matrices left to right: MulChain(a, b, c) = a * b * c.
// A point transformed by the result is transformed by c first, then b, then a.
//
// Parameters:
//   - ms: matrices to multiply; an empty list yields the identity
//
// Returns:
//   - mgl32.Mat4: the product
func MulChain(ms ...mgl32.Mat4) mgl32.Mat4 {
	out := mgl32.Ident4()
	for _, m := range ms {
		out = out.Mul4(m)
	}
	return out
}

// BasisMatrix builds a rigid transform whose columns are the given axes and translation.
//
// Parameters:
//   - x, y, z: the basis column vectors
//   - t: the translation column
//
// Returns:
//   - mgl32.Mat4: the column-major matrix [x y z t; 0 0 0 1]
func BasisMatrix(x, y, z, t mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Mat4FromCols(x.Vec4(0), y.Vec4(0), z.Vec4(0), t.Vec4(1))
}

// TransformPoint applies m to the point p with a perspective divide.
// A zero w component leaves the result undivided.
//
// Parameters:
//   - m: the transform
//   - p: the point
//
// Returns:
//   - mgl32.Vec3: the transformed point
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v[3] == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v[3])
}

// ProjectionFromTangents builds an off-axis perspective projection from the tangents of the
// half-angles of each frustum side, looking down -Z in view space.
// Left and bottom are normally negative, right and top positive.
//
// Parameters:
//   - left, right, bottom, top: tangents of the frustum side angles
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//   - depth: the clip-space depth convention to map into
//
// Returns:
//   - mgl32.Mat4: column-major projection matrix
func ProjectionFromTangents(left, right, bottom, top, near, far float32, depth DepthRange) mgl32.Mat4 {
	var out mgl32.Mat4
	out.Set(0, 0, 2/(right-left))
	out.Set(0, 2, (right+left)/(right-left))
	out.Set(1, 1, 2/(top-bottom))
	out.Set(1, 2, (top+bottom)/(top-bottom))
	switch depth {
	case DepthNegOneToOne:
		out.Set(2, 2, -(far+near)/(far-near))
		out.Set(2, 3, -2*far*near/(far-near))
	default:
		out.Set(2, 2, far/(near-far))
		out.Set(2, 3, near*far/(near-far))
	}
	out.Set(3, 2, -1)
	return out
}

// TangentsFromFov returns the frustum side tangents of a symmetric perspective.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//
// Returns:
//   - left, right, bottom, top: tangents suitable for ProjectionFromTangents
func TangentsFromFov(fovY, aspect float32) (left, right, bottom, top float32) {
	t := float32(math.Tan(float64(fovY) / 2.0))
	return -t * aspect, t * aspect, -t, t
}
