package camera

// CameraController routes raw window input onto an arcball Camera.
// Pointer drags with the rotate button become Rotate calls, drags with the pan button become
// Pan calls, and wheel input becomes Zoom. All three are suppressed while the pointer is
// outside the viewport. Resize events keep the camera's viewport in sync with the render target.
type CameraController interface {
	// Camera returns the camera driven by this controller.
	//
	// Returns:
	//   - Camera: the controlled camera
	Camera() Camera

	// Inside reports whether the pointer is currently over the viewport.
	//
	// Returns:
	//   - bool: true if input is being applied
	Inside() bool

	// Pointer returns the last pointer position seen by the controller.
	//
	// Returns:
	//   - x, y: pointer position in pixels
	Pointer() (x, y float32)

	// HandleMouseMove applies a rotate or pan for the motion since the previous pointer position,
	// depending on which button is held.
	//
	// Parameters:
	//   - x, y: new pointer position in pixels
	HandleMouseMove(x, y float32)

	// HandleMouseButton records a button press or release at the given position.
	//
	// Parameters:
	//   - button: button index (see common.MouseButtonLeft etc.)
	//   - pressed: true on press, false on release
	//   - x, y: pointer position in pixels
	HandleMouseButton(button int, pressed bool, x, y float32)

	// HandleScroll zooms the camera. A zero delta (horizontal-only scroll) is ignored.
	//
	// Parameters:
	//   - delta: vertical scroll amount, positive zooms in
	HandleScroll(delta float32)

	// HandleCursorEnter marks the pointer as entering or leaving the viewport.
	//
	// Parameters:
	//   - entered: true on enter, false on leave
	HandleCursorEnter(entered bool)

	// HandleResize forwards a new viewport extent to the camera.
	//
	// Parameters:
	//   - width, height: new size in pixels
	//
	// Returns:
	//   - error: the camera's resize error, if any
	HandleResize(width, height int) error

	// HandleKeyDown reacts to key presses; the reset key restores the default view.
	//
	// Parameters:
	//   - keyCode: virtual key code (see common.KeyR)
	HandleKeyDown(keyCode uint32)
}
