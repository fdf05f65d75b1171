package camera

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidViewport is returned when a viewport dimension is zero or negative.
	ErrInvalidViewport = errors.New("viewport width and height must be positive")

	// ErrInvalidRadius is returned when the default eye distance is zero or negative.
	ErrInvalidRadius = errors.New("camera radius must be positive")
)

// State is the complete arcball camera state as a plain value.
// Every update returns a new State and leaves the receiver untouched, so the math can be
// exercised without a window or render loop.
//
// Matrices follow mgl32's column-vector convention. A point is scaled first, then rotated,
// then translated; ViewMatrix returns Translation * Rotation * Scaling.
type State struct {
	// Pivot is the point rotation and scaling are centered on. It does not change after construction.
	Pivot mgl32.Vec3

	// Radius is the distance of the default eye position from the pivot along +Z.
	Radius float32

	// Viewport is the extent pointer coordinates are normalized against.
	Viewport Viewport

	// Translation holds the look-at transform and every pan applied since.
	Translation mgl32.Mat4

	// Rotation holds the accumulated pivot-centered arcball rotations.
	Rotation mgl32.Mat4

	// Scaling holds the accumulated pivot-centered zoom scales.
	Scaling mgl32.Mat4
}

// NewState places the eye at pivot + (0, 0, radius) looking at the pivot with +Y up,
// and sets Rotation and Scaling to identity.
//
// Parameters:
//   - pivot: rotation and scaling center
//   - radius: distance of the eye from the pivot, must be positive
//   - width, height: viewport extent in pixels, must be positive
//
// Returns:
//   - State: the initialized state
//   - error: ErrInvalidViewport or ErrInvalidRadius (wrapped) on bad input
func NewState(pivot mgl32.Vec3, radius float32, width, height int) (State, error) {
	vp := Viewport{Width: width, Height: height}
	if !vp.Valid() {
		return State{}, fmt.Errorf("new arcball state %dx%d: %w", width, height, ErrInvalidViewport)
	}
	if radius <= 0 {
		return State{}, fmt.Errorf("new arcball state radius %v: %w", radius, ErrInvalidRadius)
	}

	s := State{Pivot: pivot, Radius: radius, Viewport: vp}
	return s.Reset(), nil
}

// Reset re-initializes the three transforms from the pivot and radius, keeping the viewport.
//
// Returns:
//   - State: the state with its default view restored
func (s State) Reset() State {
	eye := s.Pivot.Add(mgl32.Vec3{0, 0, s.Radius})
	s.Translation = mgl32.LookAtV(eye, s.Pivot, mgl32.Vec3{0, 1, 0})
	s.Rotation = mgl32.Ident4()
	s.Scaling = mgl32.Ident4()
	return s
}

// Pan translates the view by delta divided by the configured pan sensitivity.
//
// Parameters:
//   - cfg: camera tuning
//   - delta: raw screen-space displacement, usually (dx, -dy, 0)
//
// Returns:
//   - State: the panned state
func (s State) Pan(cfg Config, delta mgl32.Vec3) State {
	cfg = cfg.withDefaults()
	d := delta.Mul(1 / cfg.PanSensitivity)
	s.Translation = mgl32.Translate3D(d.X(), d.Y(), d.Z()).Mul4(s.Translation)
	return s
}

// Rotate applies the arcball rotation that carries the pointer from start to end.
// Both points are projected onto the arcball; the rotation turns the first projection onto the
// second about an axis through the pivot. Coincident or opposite projections leave the state unchanged.
//
// Parameters:
//   - cfg: camera tuning
//   - start: pointer position at the previous event, in pixels
//   - end: pointer position at the current event, in pixels
//
// Returns:
//   - State: the rotated state
func (s State) Rotate(cfg Config, start, end mgl32.Vec2) State {
	cfg = cfg.withDefaults()
	a := MapSphereCoordinate(start, s.Viewport, cfg)
	b := MapSphereCoordinate(end, s.Viewport, cfg)

	axis, angle, ok := common.RotationBetween(a, b)
	if !ok {
		return s
	}

	rot := mgl32.HomogRotate3D(angle*cfg.RotateSensitivity, axis)
	s.Rotation = common.PivotTransform(s.Pivot, rot).Mul4(s.Rotation)
	return s
}

// Zoom scales the view about the pivot. Only the sign of factor matters: positive zooms in by
// ZoomInFactor, anything else zooms out by ZoomOutFactor. Scales compound multiplicatively.
//
// Parameters:
//   - cfg: camera tuning
//   - factor: signed zoom input such as a wheel delta
//
// Returns:
//   - State: the zoomed state
func (s State) Zoom(cfg Config, factor float32) State {
	cfg = cfg.withDefaults()
	f := cfg.ZoomOutFactor
	if factor > 0 {
		f = cfg.ZoomInFactor
	}
	s.Scaling = common.PivotTransform(s.Pivot, mgl32.Scale3D(f, f, f)).Mul4(s.Scaling)
	return s
}

// Resize adopts a new viewport extent. The state is returned unchanged with an error when
// either dimension is not positive.
//
// Parameters:
//   - width, height: new viewport extent in pixels
//
// Returns:
//   - State: the resized state
//   - error: ErrInvalidViewport (wrapped) on bad input
func (s State) Resize(width, height int) (State, error) {
	vp := Viewport{Width: width, Height: height}
	if !vp.Valid() {
		return s, fmt.Errorf("resize arcball to %dx%d: %w", width, height, ErrInvalidViewport)
	}
	s.Viewport = vp
	return s, nil
}

// ViewMatrix composes the current transforms. It is recomputed on every call.
//
// Returns:
//   - mgl32.Mat4: Translation * Rotation * Scaling
func (s State) ViewMatrix() mgl32.Mat4 {
	return s.Translation.Mul4(s.Rotation).Mul4(s.Scaling)
}
