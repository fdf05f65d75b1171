package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LineVertex is one endpoint of a line segment. Consecutive pairs form a line list.
type LineVertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// LineLoop connects points into a closed loop of segments, last point back to the first.
//
// Parameters:
//   - points: the loop in drawing order
//   - color: the color of every segment
//
// Returns:
//   - []LineVertex: 2*len(points) vertices, or nil for fewer than two points
func LineLoop(points []mgl32.Vec3, color mgl32.Vec3) []LineVertex {
	if len(points) < 2 {
		return nil
	}
	out := make([]LineVertex, 0, 2*len(points))
	for i, p := range points {
		next := points[(i+1)%len(points)]
		out = append(out, LineVertex{p, color}, LineVertex{next, color})
	}
	return out
}

// SphereWireframe builds the latitude and longitude lines of a UV sphere.
// Latitude circles are drawn for every ring except the poles; each meridian runs pole to pole.
//
// Parameters:
//   - center: sphere center
//   - radius: sphere radius
//   - rings: latitude bands, at least 2
//   - segments: longitude slices, at least 3
//   - color: the color of every line
//
// Returns:
//   - []LineVertex: the wireframe as a line list
func SphereWireframe(center mgl32.Vec3, radius float32, rings, segments int, color mgl32.Vec3) []LineVertex {
	rings = max(rings, 2)
	segments = max(segments, 3)

	point := func(ring, seg int) mgl32.Vec3 {
		sinT, cosT := math.Sincos(math.Pi * float64(ring) / float64(rings))
		sinP, cosP := math.Sincos(2 * math.Pi * float64(seg) / float64(segments))
		dir := mgl32.Vec3{float32(sinT * cosP), float32(cosT), float32(sinT * sinP)}
		return center.Add(dir.Mul(radius))
	}

	out := make([]LineVertex, 0, 2*segments*(2*rings-1))
	for i := 1; i < rings; i++ {
		for j := range segments {
			out = append(out, LineVertex{point(i, j), color}, LineVertex{point(i, j+1), color})
		}
	}
	for j := range segments {
		for i := range rings {
			out = append(out, LineVertex{point(i, j), color}, LineVertex{point(i+1, j), color})
		}
	}
	return out
}

// Positions returns the position of every vertex, e.g. for bounds computation.
func Positions(vertices []LineVertex) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = v.Position
	}
	return out
}
