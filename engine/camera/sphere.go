package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport is the pixel extent of the render target the pointer moves over.
type Viewport struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are strictly positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// MapSphereCoordinate projects a screen point onto the unit arcball hemisphere facing the viewer.
// Screen y grows downward, so it is flipped to make +Y point up.
// Points inside the unit disc land on the front hemisphere (z >= 0); points outside are pulled
// radially onto the silhouette circle with z = 0. The function is pure: the same inputs always
// give the same output.
//
// Parameters:
//   - point: pointer position in viewport pixels
//   - vp: viewport extent, must be valid
//   - cfg: normalization and clamping policy
//
// Returns:
//   - mgl32.Vec3: a unit vector on the arcball
func MapSphereCoordinate(point mgl32.Vec2, vp Viewport, cfg Config) mgl32.Vec3 {
	w, h := float32(vp.Width), float32(vp.Height)
	sx, sy := w, h
	if cfg.Normalize == NormalizeShortestSide {
		d := min(w, h)
		sx, sy = d, d
	}

	x := (2*point.X() - w) / sx
	y := -(2*point.Y() - h) / sy

	if !cfg.DisableClamp {
		x = common.Clamp(x, -1, 1)
		y = common.Clamp(y, -1, 1)
	}

	r2 := x*x + y*y
	if r2 <= 1 {
		return mgl32.Vec3{x, y, float32(math.Sqrt(float64(1 - r2)))}
	}

	n := float32(math.Sqrt(float64(r2)))
	return mgl32.Vec3{x / n, y / n, 0}
}
