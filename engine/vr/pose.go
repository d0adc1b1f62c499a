package vr

import (
	"math"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the orientation and position of a tracked device in one Space.
// Right, Up and Forward are expected to be mutually orthogonal unit vectors.
type Pose struct {
	Right    mgl32.Vec3
	Up       mgl32.Vec3
	Forward  mgl32.Vec3
	Position mgl32.Vec3
}

// IdentityPose returns a pose at the origin looking down -Z with +Y up.
func IdentityPose() Pose {
	return Pose{
		Right:   mgl32.Vec3{1, 0, 0},
		Up:      mgl32.Vec3{0, 1, 0},
		Forward: mgl32.Vec3{0, 0, -1},
	}
}

// BasisMatrix returns the head-to-world transform of the pose: columns (right, up, -forward)
// with the position as translation. Forward is negated because view space looks down -Z.
//
// Returns:
//   - mgl32.Mat4: the column-major basis and translation matrix
func (p Pose) BasisMatrix() mgl32.Mat4 {
	return common.BasisMatrix(p.Right, p.Up, p.Forward.Mul(-1), p.Position)
}

// Orthonormal reports whether the basis vectors are unit length and mutually orthogonal within eps.
//
// Parameters:
//   - eps: absolute tolerance for lengths and dot products
//
// Returns:
//   - bool: true if the basis is orthonormal
func (p Pose) Orthonormal(eps float32) bool {
	within := func(v, want float32) bool {
		return math.Abs(float64(v-want)) <= float64(eps)
	}
	for _, v := range []mgl32.Vec3{p.Right, p.Up, p.Forward} {
		if !within(v.Len(), 1) {
			return false
		}
	}
	return within(p.Right.Dot(p.Up), 0) &&
		within(p.Right.Dot(p.Forward), 0) &&
		within(p.Up.Dot(p.Forward), 0)
}

// Transformed returns the pose carried by the rigid transform m.
// Directions are rotated by the upper 3x3 of m, the position is fully transformed.
//
// Parameters:
//   - m: a rigid transform
//
// Returns:
//   - Pose: the transformed pose
func (p Pose) Transformed(m mgl32.Mat4) Pose {
	return Pose{
		Right:    m.Mul4x1(p.Right.Vec4(0)).Vec3(),
		Up:       m.Mul4x1(p.Up.Vec4(0)).Vec3(),
		Forward:  m.Mul4x1(p.Forward.Vec4(0)).Vec3(),
		Position: m.Mul4x1(p.Position.Vec4(1)).Vec3(),
	}
}
