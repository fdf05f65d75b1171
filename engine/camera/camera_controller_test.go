package camera

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/go-gl/mathgl/mgl32"
)

func newTestController(t *testing.T, options ...CameraControllerOption) (CameraController, State) {
	t.Helper()
	cam := newTestCamera(t, WithRadius(10))
	return NewCameraController(cam, options...), cam.State()
}

func TestCameraController_IgnoresInputOutsideViewport(t *testing.T) {
	cc, initial := newTestController(t)

	cc.HandleMouseButton(common.MouseButtonLeft, true, 400, 300)
	cc.HandleMouseMove(440, 300)
	cc.HandleScroll(1)

	if cc.Inside() {
		t.Fatalf("controller should start outside the viewport")
	}
	if cc.Camera().State() != initial {
		t.Errorf("input outside the viewport changed the camera")
	}
}

func TestCameraController_LeftDragRotates(t *testing.T) {
	cc, initial := newTestController(t)
	cfg := cc.Camera().Config()

	cc.HandleCursorEnter(true)
	cc.HandleMouseButton(common.MouseButtonLeft, true, 400, 300)
	cc.HandleMouseMove(440, 300)
	cc.HandleMouseMove(470, 320)

	want := initial.
		Rotate(cfg, mgl32.Vec2{400, 300}, mgl32.Vec2{440, 300}).
		Rotate(cfg, mgl32.Vec2{440, 300}, mgl32.Vec2{470, 320})
	if got := cc.Camera().Rotation(); got != want.Rotation {
		t.Errorf("Rotation() = %v, want %v", got, want.Rotation)
	}
	if cc.Camera().Translation() != initial.Translation {
		t.Errorf("rotate drag changed translation")
	}
}

func TestCameraController_RightDragPans(t *testing.T) {
	cc, initial := newTestController(t)
	cfg := cc.Camera().Config()

	cc.HandleCursorEnter(true)
	cc.HandleMouseButton(common.MouseButtonRight, true, 100, 100)
	cc.HandleMouseMove(110, 90)

	want := initial.Pan(cfg, mgl32.Vec3{10, 10, 0})
	if got := cc.Camera().Translation(); got != want.Translation {
		t.Errorf("Translation() = %v, want %v", got, want.Translation)
	}
	if cc.Camera().Rotation() != initial.Rotation {
		t.Errorf("pan drag changed rotation")
	}
}

func TestCameraController_RotateWinsOverPan(t *testing.T) {
	cc, initial := newTestController(t)

	cc.HandleCursorEnter(true)
	cc.HandleMouseButton(common.MouseButtonRight, true, 400, 300)
	cc.HandleMouseButton(common.MouseButtonLeft, true, 400, 300)
	cc.HandleMouseMove(450, 300)

	if cc.Camera().Translation() != initial.Translation {
		t.Errorf("pan applied while rotate button held")
	}
	if cc.Camera().Rotation() == initial.Rotation {
		t.Errorf("rotation not applied")
	}
}

func TestCameraController_ReleaseStopsDrag(t *testing.T) {
	cc, _ := newTestController(t)

	cc.HandleCursorEnter(true)
	cc.HandleMouseButton(common.MouseButtonLeft, true, 400, 300)
	cc.HandleMouseMove(420, 300)
	cc.HandleMouseButton(common.MouseButtonLeft, false, 420, 300)
	before := cc.Camera().State()

	cc.HandleMouseMove(600, 100)
	if cc.Camera().State() != before {
		t.Errorf("motion after release changed the camera")
	}
	if x, y := cc.Pointer(); x != 600 || y != 100 {
		t.Errorf("Pointer() = (%v, %v), want (600, 100)", x, y)
	}
}

func TestCameraController_ReenterDoesNotJump(t *testing.T) {
	cc, initial := newTestController(t)
	cfg := cc.Camera().Config()

	cc.HandleCursorEnter(true)
	cc.HandleMouseButton(common.MouseButtonLeft, true, 400, 300)
	cc.HandleCursorEnter(false)
	cc.HandleMouseMove(790, 10)
	cc.HandleCursorEnter(true)
	cc.HandleMouseMove(780, 20)

	want := initial.Rotate(cfg, mgl32.Vec2{790, 10}, mgl32.Vec2{780, 20})
	if got := cc.Camera().Rotation(); got != want.Rotation {
		t.Errorf("Rotation() = %v, want only the post-enter motion %v", got, want.Rotation)
	}
}

func TestCameraController_Scroll(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float32
		want   float32
	}{
		{name: "Zoom in twice", deltas: []float32{1, 1}, want: 1.21},
		{name: "Zoom out", deltas: []float32{-2}, want: 0.9},
		{name: "Horizontal scroll ignored", deltas: []float32{0, 0}, want: 1},
		{name: "In then out", deltas: []float32{1, -1}, want: 0.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc, _ := newTestController(t, WithInside(true))
			for _, d := range tt.deltas {
				cc.HandleScroll(d)
			}
			if got := cc.Camera().Scaling()[0]; !mgl32.FloatEqualThreshold(got, tt.want, 1e-5) {
				t.Errorf("scale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraController_CustomButtons(t *testing.T) {
	cc, initial := newTestController(t,
		WithInside(true),
		WithRotateButton(common.MouseButtonMiddle),
		WithPanButton(common.MouseButtonLeft),
	)

	cc.HandleMouseButton(common.MouseButtonLeft, true, 200, 200)
	cc.HandleMouseMove(250, 200)
	if cc.Camera().Translation() == initial.Translation {
		t.Errorf("left drag should pan with custom buttons")
	}
	if cc.Camera().Rotation() != initial.Rotation {
		t.Errorf("left drag should not rotate with custom buttons")
	}
}

func TestCameraController_ResetKey(t *testing.T) {
	cc, initial := newTestController(t, WithInside(true))

	cc.HandleScroll(1)
	cc.HandleKeyDown(common.KeySpace)
	if cc.Camera().Scaling() == initial.Scaling {
		t.Fatalf("non-reset key restored the view")
	}

	cc.HandleKeyDown(common.KeyR)
	if cc.Camera().State() != initial {
		t.Errorf("reset key did not restore the initial state")
	}
}

func TestCameraController_Resize(t *testing.T) {
	cc, _ := newTestController(t)

	if err := cc.HandleResize(1024, 768); err != nil {
		t.Fatalf("HandleResize() error = %v", err)
	}
	if w, h := cc.Camera().Viewport(); w != 1024 || h != 768 {
		t.Errorf("Viewport() = %dx%d, want 1024x768", w, h)
	}
	if err := cc.HandleResize(1024, 0); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("HandleResize(1024, 0) error = %v, want ErrInvalidViewport", err)
	}
}
