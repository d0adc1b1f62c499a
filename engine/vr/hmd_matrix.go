package vr

import "github.com/go-gl/mathgl/mgl32"

// HmdMatrix44 is a 4x4 matrix as reported by the VR runtime, stored row-major: M[row][col].
type HmdMatrix44 struct {
	M [4][4]float32
}

// HmdMatrix34 is a 3x4 rigid transform as reported by the VR runtime, stored row-major.
// The implicit fourth row is (0, 0, 0, 1).
type HmdMatrix34 struct {
	M [3][4]float32
}

// Mat4 converts the runtime matrix to the engine's column-major convention.
func (h HmdMatrix44) Mat4() mgl32.Mat4 {
	var out mgl32.Mat4
	for row := range 4 {
		for col := range 4 {
			out.Set(row, col, h.M[row][col])
		}
	}
	return out
}

// Mat4 converts the runtime transform to a column-major 4x4 with bottom row (0, 0, 0, 1).
func (h HmdMatrix34) Mat4() mgl32.Mat4 {
	out := mgl32.Ident4()
	for row := range 3 {
		for col := range 4 {
			out.Set(row, col, h.M[row][col])
		}
	}
	return out
}

// HmdMatrix44From converts a column-major matrix to the runtime's row-major layout.
func HmdMatrix44From(m mgl32.Mat4) HmdMatrix44 {
	var h HmdMatrix44
	for row := range 4 {
		for col := range 4 {
			h.M[row][col] = m.At(row, col)
		}
	}
	return h
}

// HmdMatrix34From converts the upper three rows of a column-major matrix to the runtime's
// 3x4 layout. The bottom row of m is discarded.
func HmdMatrix34From(m mgl32.Mat4) HmdMatrix34 {
	var h HmdMatrix34
	for row := range 3 {
		for col := range 4 {
			h.M[row][col] = m.At(row, col)
		}
	}
	return h
}
