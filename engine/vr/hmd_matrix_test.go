package vr

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestHmdMatrix44ToColumnMajor(t *testing.T) {
	h := HmdMatrix44{M: [4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}}
	m := h.Mat4()

	assert.Equal(t, float32(4), m.At(0, 3))
	assert.Equal(t, float32(4), m[12])
	assert.Equal(t, float32(13), m[3])
	assert.Equal(t, h, HmdMatrix44From(m))
}

func TestHmdMatrix34ToColumnMajor(t *testing.T) {
	h := HmdMatrix34{M: [3][4]float32{
		{1, 0, 0, 0.5},
		{0, 1, 0, -0.25},
		{0, 0, 1, 2},
	}}
	m := h.Mat4()

	assert.Equal(t, mgl32.Translate3D(0.5, -0.25, 2), m)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, m.Row(3))
	assert.Equal(t, h, HmdMatrix34From(m))
}
