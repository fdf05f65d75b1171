package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUViewUniformSource is the canonical WGSL definition of the ViewUniform struct.
// Matches GPUViewUniform layout exactly (128 bytes).
//
//go:embed assets/view_uniform.wgsl
var GPUViewUniformSource string

// GPUViewUniform is the GPU-aligned representation of the arcball view uniform buffer.
// Matches the WGSL ViewUniform struct layout exactly (see GPUViewUniformSource).
// Size: 128 bytes.
type GPUViewUniform struct {
	Projection [16]float32 // offset  0: orthographic projection (mat4x4<f32>)
	View       [16]float32 // offset 64: arcball view matrix (mat4x4<f32>)
}

// Size returns the size of the GPUViewUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUViewUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUViewUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUViewUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Projection[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.View[i]))
	}
	return buf
}

// clipDepthRemap maps OpenGL clip depth [-1, 1] onto the [0, 1] range WebGPU clips against.
var clipDepthRemap = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// OrthoProjection builds an orthographic projection that shows viewVolume units above and below
// the center and widens horizontally with the viewport aspect ratio.
// Depth follows WebGPU clip space: view-space z = +viewVolume maps to 0 and z = -viewVolume to 1.
//
// Parameters:
//   - vp: viewport extent, must be valid
//   - viewVolume: half-height of the visible volume; depth spans [-viewVolume, viewVolume]
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func OrthoProjection(vp Viewport, viewVolume float32) mgl32.Mat4 {
	aspect := float32(vp.Width) / float32(vp.Height)
	ortho := mgl32.Ortho(-viewVolume*aspect, viewVolume*aspect, -viewVolume, viewVolume, -viewVolume, viewVolume)
	return clipDepthRemap.Mul4(ortho)
}
