package bounds

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func cubeVertices(center mgl32.Vec3, half float32) []mgl32.Vec3 {
	var vs []mgl32.Vec3
	for _, x := range []float32{-half, half} {
		for _, y := range []float32{-half, half} {
			for _, z := range []float32{-half, half} {
				vs = append(vs, center.Add(mgl32.Vec3{x, y, z}))
			}
		}
	}
	return vs
}

func TestCompute_Cube(t *testing.T) {
	tests := []struct {
		name   string
		center mgl32.Vec3
		half   float32
	}{
		{name: "Unit cube at origin", center: mgl32.Vec3{0, 0, 0}, half: 0.5},
		{name: "Offset cube", center: mgl32.Vec3{10, -4, 3}, half: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Compute(cubeVertices(tt.center, tt.half))
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if !b.Center().ApproxEqualThreshold(tt.center, 1e-5) {
				t.Errorf("Center() = %v, want %v", b.Center(), tt.center)
			}
			wantRadius := tt.half * float32(math.Sqrt(3))
			if !mgl32.FloatEqualThreshold(b.Radius(), wantRadius, 1e-5) {
				t.Errorf("Radius() = %v, want %v", b.Radius(), wantRadius)
			}
			if !mgl32.FloatEqualThreshold(b.ViewRadius(), 2*wantRadius, 1e-5) {
				t.Errorf("ViewRadius() = %v, want %v", b.ViewRadius(), 2*wantRadius)
			}
		})
	}
}

func TestCompute_SingleVertex(t *testing.T) {
	v := mgl32.Vec3{1, 2, 3}
	b, err := Compute([]mgl32.Vec3{v})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if b.Min != v || b.Max != v || b.Radius() != 0 {
		t.Errorf("single vertex bounds = %+v, radius %v", b, b.Radius())
	}
}

func TestCompute_Empty(t *testing.T) {
	if _, err := Compute(nil); !errors.Is(err, ErrNoVertices) {
		t.Errorf("Compute(nil) error = %v, want ErrNoVertices", err)
	}
	if _, err := ComputeParallel([]mgl32.Vec3{}); !errors.Is(err, ErrNoVertices) {
		t.Errorf("ComputeParallel(empty) error = %v, want ErrNoVertices", err)
	}
}

func TestComputeParallel_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	vertices := make([]mgl32.Vec3, 10007)
	for i := range vertices {
		vertices[i] = mgl32.Vec3{
			rng.Float32()*200 - 100,
			rng.Float32()*50 - 10,
			rng.Float32()*80 - 40,
		}
	}

	want, err := Compute(vertices)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	tests := []struct {
		name    string
		options []BoundsOption
	}{
		{name: "Defaults (single chunk)", options: nil},
		{name: "Small chunks", options: []BoundsOption{WithChunkSize(100), WithWorkers(4)}},
		{name: "Uneven chunks", options: []BoundsOption{WithChunkSize(333), WithWorkers(3)}},
		{name: "One worker", options: []BoundsOption{WithChunkSize(1000), WithWorkers(1)}},
		{name: "Invalid options ignored", options: []BoundsOption{WithChunkSize(0), WithWorkers(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeParallel(vertices, tt.options...)
			if err != nil {
				t.Fatalf("ComputeParallel() error = %v", err)
			}
			if got != want {
				t.Errorf("ComputeParallel() = %+v, want %+v", got, want)
			}
		})
	}
}
