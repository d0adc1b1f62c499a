package vr

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUEyeUniformSource is the canonical WGSL definition of the EyeUniform struct.
// Matches GPUEyeUniform layout exactly (80 bytes, std430 aligned).
//
//go:embed assets/eye_uniform.wgsl
var GPUEyeUniformSource string

// GPUEyeUniform is the GPU-aligned representation of one eye's camera uniform buffer.
// Size: 80 bytes (std430 / WGSL aligned).
type GPUEyeUniform struct {
	Combined    [16]float32 // offset  0: projection * inverse eye space * view (mat4x4<f32>)
	EyePosition [3]float32  // offset 64: world-space eye position (vec3<f32>)
	_pad        float32     // offset 76: padding to 80 bytes
}

// Size returns the size of the GPUEyeUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUEyeUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform into a little-endian byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUEyeUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i, v := range g.Combined {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	for i, v := range g.EyePosition {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(v))
	}
	return buf
}
