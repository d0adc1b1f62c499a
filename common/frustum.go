package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   [3]float32
	Distance float32
}

// SignedDistance returns the signed distance of pt from the plane.
// Positive values lie on the side the normal points to.
//
// Parameters:
//   - pt: the point to test
//
// Returns:
//   - float32: signed distance (scaled by the normal length when the plane is not normalized)
func (p Plane) SignedDistance(pt mgl32.Vec3) float32 {
	return mgl32.Vec3(p.Normal).Dot(pt) + p.Distance
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ContainsPoint reports whether pt lies inside or on every plane of the frustum.
//
// Parameters:
//   - pt: world-space point
//
// Returns:
//   - bool: true if the point is inside the frustum
func (f Frustum) ContainsPoint(pt mgl32.Vec3) bool {
	for _, p := range f.Planes {
		if p.SignedDistance(pt) < 0 {
			return false
		}
	}
	return true
}

// frustumCornerPlanes lists three non-collinear FrustumCorners indices on each face, by plane index.
var frustumCornerPlanes = [6][3]int{
	FrustumLeft:   {0, 4, 6},
	FrustumRight:  {1, 3, 7},
	FrustumBottom: {0, 1, 5},
	FrustumTop:    {2, 6, 7},
	FrustumNear:   {0, 2, 3},
	FrustumFar:    {4, 5, 7},
}

// FrustumCorners unprojects the eight clip-space cube corners through invCombined.
// Corner i has +x when bit 0 is set, +y when bit 1 is set and lies on the far plane when bit 2 is set.
//
// Parameters:
//   - invCombined: inverse of the combined projection-view matrix (column-major)
//   - depth: the clip-space depth convention the combined matrix maps into
//
// Returns:
//   - [8]mgl32.Vec3: world-space corners
func FrustumCorners(invCombined mgl32.Mat4, depth DepthRange) [8]mgl32.Vec3 {
	var corners [8]mgl32.Vec3
	for i := range corners {
		c := mgl32.Vec3{-1, -1, depth.MinZ()}
		if i&1 != 0 {
			c[0] = 1
		}
		if i&2 != 0 {
			c[1] = 1
		}
		if i&4 != 0 {
			c[2] = 1
		}
		corners[i] = TransformPoint(invCombined, c)
	}
	return corners
}

// FrustumFromInverse derives the frustum planes from the inverse of a combined projection-view
// matrix by unprojecting the clip-space cube corners and fitting a plane through each face.
// Each plane is normalized and oriented so the centroid of the corners lies on its positive side.
//
// Parameters:
//   - invCombined: inverse of the combined projection-view matrix (column-major)
//   - depth: the clip-space depth convention the combined matrix maps into
//
// Returns:
//   - Frustum: the derived frustum with normalized, inward-facing planes
func FrustumFromInverse(invCombined mgl32.Mat4, depth DepthRange) Frustum {
	corners := FrustumCorners(invCombined, depth)

	var centroid mgl32.Vec3
	for _, c := range corners {
		centroid = centroid.Add(c)
	}
	centroid = centroid.Mul(1.0 / 8.0)

	var f Frustum
	for i, idx := range frustumCornerPlanes {
		a, b, c := corners[idx[0]], corners[idx[1]], corners[idx[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		p := Plane{Normal: [3]float32(n), Distance: -n.Dot(a)}
		if p.SignedDistance(centroid) < 0 {
			p.Normal = [3]float32(n.Mul(-1))
			p.Distance = -p.Distance
		}
		f.Planes[i] = p
	}
	return f
}

// ExtractFrustumFromMatrix extracts frustum planes from a combined projection-view matrix
// using the Gribb/Hartmann method.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - combined: the combined projection-view matrix (column-major)
//   - depth: the clip-space depth convention; for DepthZeroToOne the near plane is row2 alone
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(combined mgl32.Mat4, depth DepthRange) Frustum {
	r0, r1, r2, r3 := combined.Row(0), combined.Row(1), combined.Row(2), combined.Row(3)

	rows := [6]mgl32.Vec4{
		FrustumLeft:   r3.Add(r0),
		FrustumRight:  r3.Sub(r0),
		FrustumBottom: r3.Add(r1),
		FrustumTop:    r3.Sub(r1),
		FrustumNear:   r3.Add(r2),
		FrustumFar:    r3.Sub(r2),
	}
	if depth == DepthZeroToOne {
		rows[FrustumNear] = r2
	}

	var f Frustum
	for i, r := range rows {
		f.Planes[i] = Plane{Normal: [3]float32{r[0], r[1], r[2]}, Distance: r[3]}
		f.normalizePlane(i)
	}
	return f
}

// normalizePlane normalizes a frustum plane so that the normal has unit length.
func (f *Frustum) normalizePlane(index int) {
	p := &f.Planes[index]
	length := float32(math.Sqrt(float64(
		p.Normal[0]*p.Normal[0] +
			p.Normal[1]*p.Normal[1] +
			p.Normal[2]*p.Normal[2],
	)))

	if length > 0 {
		invLen := 1.0 / length
		p.Normal[0] *= invLen
		p.Normal[1] *= invLen
		p.Normal[2] *= invLen
		p.Distance *= invLen
	}
}
