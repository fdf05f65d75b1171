package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// It keeps the pointer and button state between events so each move can be turned into a
// (previous, current) pair for the camera.
type cameraControllerImpl struct {
	mu *sync.Mutex

	camera Camera

	rotateButton int
	panButton    int
	resetKey     uint32

	inside   bool
	pressed  map[int]bool
	lastX    float32
	lastY    float32
	havePrev bool
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller for cam with left-drag rotate, right-drag pan,
// and R to reset.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:           &sync.Mutex{},
		camera:       cam,
		rotateButton: common.MouseButtonLeft,
		panButton:    common.MouseButtonRight,
		resetKey:     common.KeyR,
		pressed:      make(map[int]bool),
	}

	for _, option := range options {
		option(cc)
	}

	return cc
}

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.camera
}

func (cc *cameraControllerImpl) Inside() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.inside
}

func (cc *cameraControllerImpl) Pointer() (x, y float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.lastX, cc.lastY
}

func (cc *cameraControllerImpl) HandleMouseMove(x, y float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	prevX, prevY, hadPrev := cc.lastX, cc.lastY, cc.havePrev
	cc.lastX, cc.lastY, cc.havePrev = x, y, true

	// The pointer position is always tracked so re-entering the viewport does not jump.
	if !cc.inside || !hadPrev {
		return
	}

	switch {
	case cc.pressed[cc.rotateButton]:
		cc.camera.Rotate(mgl32.Vec2{prevX, prevY}, mgl32.Vec2{x, y})
	case cc.pressed[cc.panButton]:
		cc.camera.Pan(mgl32.Vec3{x - prevX, -(y - prevY), 0})
	}
}

func (cc *cameraControllerImpl) HandleMouseButton(button int, pressed bool, x, y float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pressed[button] = pressed
	cc.lastX, cc.lastY, cc.havePrev = x, y, true
}

func (cc *cameraControllerImpl) HandleScroll(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.inside || delta == 0 {
		return
	}
	cc.camera.Zoom(delta)
}

func (cc *cameraControllerImpl) HandleCursorEnter(entered bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.inside = entered
}

func (cc *cameraControllerImpl) HandleResize(width, height int) error {
	return cc.camera.Resize(width, height)
}

func (cc *cameraControllerImpl) HandleKeyDown(keyCode uint32) {
	if keyCode == cc.resetKey {
		cc.camera.Reset()
	}
}
