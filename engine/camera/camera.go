package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	radius float32
	cfg    Config
	state  State
}

// Camera defines the interface for the arcball camera.
// It owns the translation, rotation, and scaling transforms of a viewed object and composes
// them into a view matrix. All methods are safe to call from the input thread while the render
// thread reads ViewMatrix.
type Camera interface {
	// Pivot returns the point rotation and scaling are centered on.
	//
	// Returns:
	//   - mgl32.Vec3: the pivot
	Pivot() mgl32.Vec3

	// Radius returns the distance of the default eye position from the pivot.
	//
	// Returns:
	//   - float32: the radius
	Radius() float32

	// Viewport returns the viewport extent used to normalize pointer coordinates.
	//
	// Returns:
	//   - width, height: viewport size in pixels
	Viewport() (width, height int)

	// Config returns the camera tuning with defaults filled in.
	//
	// Returns:
	//   - Config: the active configuration
	Config() Config

	// State returns a copy of the camera's current state.
	//
	// Returns:
	//   - State: snapshot of pivot, viewport, and transforms
	State() State

	// Translation returns the accumulated look-at and pan transform.
	//
	// Returns:
	//   - mgl32.Mat4: the translation matrix
	Translation() mgl32.Mat4

	// Rotation returns the accumulated pivot-centered rotation.
	//
	// Returns:
	//   - mgl32.Mat4: the rotation matrix
	Rotation() mgl32.Mat4

	// Scaling returns the accumulated pivot-centered scale.
	//
	// Returns:
	//   - mgl32.Mat4: the scaling matrix
	Scaling() mgl32.Mat4

	// ViewMatrix returns the composed 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// Uniform returns the view matrix together with an orthographic projection sized
	// to the viewport and the configured view volume, ready for GPU upload.
	//
	// Returns:
	//   - GPUViewUniform: the packed matrices
	Uniform() GPUViewUniform

	// SphereCoordinate maps a screen point onto the arcball using the current viewport and config.
	//
	// Parameters:
	//   - point: pointer position in pixels
	//
	// Returns:
	//   - mgl32.Vec3: unit vector on the arcball
	SphereCoordinate(point mgl32.Vec2) mgl32.Vec3

	// Pan translates the view by delta scaled down by the pan sensitivity.
	//
	// Parameters:
	//   - delta: screen-space displacement
	Pan(delta mgl32.Vec3)

	// Rotate applies the arcball rotation from start to end about the pivot.
	//
	// Parameters:
	//   - start: previous pointer position in pixels
	//   - end: current pointer position in pixels
	Rotate(start, end mgl32.Vec2)

	// Zoom scales the view about the pivot; positive zooms in, otherwise zooms out.
	//
	// Parameters:
	//   - factor: signed zoom input
	Zoom(factor float32)

	// Resize adopts a new viewport extent.
	//
	// Parameters:
	//   - width, height: new viewport size in pixels
	//
	// Returns:
	//   - error: wraps ErrInvalidViewport if either dimension is not positive
	Resize(width, height int) error

	// Reset restores the default view for the current pivot and radius.
	Reset()
}

var _ Camera = &cameraImpl{}

// NewArcballCamera creates an arcball camera looking at pivot from pivot + (0, 0, radius).
// The radius defaults to DefaultRadius and can be set with WithRadius.
//
// Parameters:
//   - pivot: rotation and scaling center, typically the bounding-sphere center of the viewed object
//   - width, height: viewport size in pixels, must be positive
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
//   - error: wraps ErrInvalidViewport or ErrInvalidRadius on bad input
func NewArcballCamera(pivot mgl32.Vec3, width, height int, options ...CameraBuilderOption) (Camera, error) {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		radius: DefaultRadius,
		cfg:    DefaultConfig(),
	}
	for _, option := range options {
		option(c)
	}
	c.cfg = c.cfg.withDefaults()

	s, err := NewState(pivot, c.radius, width, height)
	if err != nil {
		return nil, err
	}
	c.state = s
	return c, nil
}

func (c *cameraImpl) Pivot() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Pivot
}

func (c *cameraImpl) Radius() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Radius
}

func (c *cameraImpl) Viewport() (width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Viewport.Width, c.state.Viewport.Height
}

func (c *cameraImpl) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

func (c *cameraImpl) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *cameraImpl) Translation() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Translation
}

func (c *cameraImpl) Rotation() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Rotation
}

func (c *cameraImpl) Scaling() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Scaling
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return [16]float32(c.state.ViewMatrix())
}

func (c *cameraImpl) Uniform() GPUViewUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUViewUniform{
		Projection: [16]float32(OrthoProjection(c.state.Viewport, c.cfg.ViewVolume)),
		View:       [16]float32(c.state.ViewMatrix()),
	}
}

func (c *cameraImpl) SphereCoordinate(point mgl32.Vec2) mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MapSphereCoordinate(point, c.state.Viewport, c.cfg)
}

func (c *cameraImpl) Pan(delta mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Pan(c.cfg, delta)
}

func (c *cameraImpl) Rotate(start, end mgl32.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Rotate(c.cfg, start, end)
}

func (c *cameraImpl) Zoom(factor float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Zoom(c.cfg, factor)
}

func (c *cameraImpl) Resize(width, height int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.state.Resize(width, height)
	if err != nil {
		return err
	}
	c.state = s
	return nil
}

func (c *cameraImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Reset()
}
