package camera

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGPUViewUniform_Marshal(t *testing.T) {
	var u GPUViewUniform
	for i := range 16 {
		u.Projection[i] = float32(i) + 0.5
		u.View[i] = -float32(i) * 2
	}

	if u.Size() != 128 {
		t.Fatalf("Size() = %d, want 128", u.Size())
	}
	buf := u.Marshal()
	if len(buf) != 128 {
		t.Fatalf("len(Marshal()) = %d, want 128", len(buf))
	}
	for i := range 16 {
		if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])); got != u.Projection[i] {
			t.Errorf("projection[%d] = %v, want %v", i, got, u.Projection[i])
		}
		if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:])); got != u.View[i] {
			t.Errorf("view[%d] = %v, want %v", i, got, u.View[i])
		}
	}
}

func TestGPUViewUniformSource(t *testing.T) {
	for _, field := range []string{"struct ViewUniform", "projection: mat4x4<f32>", "view: mat4x4<f32>"} {
		if !strings.Contains(GPUViewUniformSource, field) {
			t.Errorf("WGSL source missing %q", field)
		}
	}
}

func TestOrthoProjection_Aspect(t *testing.T) {
	p := OrthoProjection(Viewport{Width: 800, Height: 600}, 100)

	// A point at the top-right of the view volume lands on the clip-space corner.
	corner := p.Mul4x1(mgl32.Vec4{100 * 800.0 / 600.0, 100, 0, 1})
	if !mgl32.FloatEqualThreshold(corner.X(), 1, 1e-5) || !mgl32.FloatEqualThreshold(corner.Y(), 1, 1e-5) {
		t.Errorf("corner maps to %v, want x=1 y=1", corner)
	}
}

func TestOrthoProjection_WebGPUDepthRange(t *testing.T) {
	p := OrthoProjection(Viewport{Width: 800, Height: 600}, 100)

	tests := []struct {
		name  string
		z     float32
		depth float32
	}{
		{"front of volume", 100, 0},
		{"center", 0, 0.5},
		{"back of volume", -100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := p.Mul4x1(mgl32.Vec4{0, 0, tt.z, 1})
			if !mgl32.FloatEqualThreshold(clip.Z()/clip.W(), tt.depth, 1e-5) {
				t.Errorf("depth of z=%v is %v, want %v", tt.z, clip.Z()/clip.W(), tt.depth)
			}
		})
	}
}
