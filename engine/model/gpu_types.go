package model

import (
	_ "embed"
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
)

//go:embed assets/line.wgsl
var lineShaderBody string

// LineShaderSource is the complete WGSL for the line pipeline: the ViewUniform struct
// followed by a vertex stage reading LineVertex (location 0 position, location 1 color)
// and a flat-color fragment stage. Entry points are vs_main and fs_main.
var LineShaderSource = camera.GPUViewUniformSource + "\n" + lineShaderBody

// LineVertexStride is the size in bytes of one marshaled LineVertex.
const LineVertexStride = 24

// LineColorOffset is the byte offset of the color attribute inside a marshaled LineVertex.
const LineColorOffset = 12

// MarshalLines serializes vertices as tightly packed little-endian float32 triples,
// position then color, suitable for a vertex buffer.
//
// Parameters:
//   - vertices: the line list
//
// Returns:
//   - []byte: LineVertexStride bytes per vertex
func MarshalLines(vertices []LineVertex) []byte {
	buf := make([]byte, len(vertices)*LineVertexStride)
	for i, v := range vertices {
		base := i * LineVertexStride
		for k := range 3 {
			binary.LittleEndian.PutUint32(buf[base+k*4:], math.Float32bits(v.Position[k]))
			binary.LittleEndian.PutUint32(buf[base+LineColorOffset+k*4:], math.Float32bits(v.Color[k]))
		}
	}
	return buf
}
