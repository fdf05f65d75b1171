package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithRotateButton sets the mouse button that drives arcball rotation.
//
// Parameters:
//   - button: button index (default common.MouseButtonLeft)
//
// Returns:
//   - CameraControllerOption: functional option to set the rotate button
func WithRotateButton(button int) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rotateButton = button
	}
}

// WithPanButton sets the mouse button that drives panning.
//
// Parameters:
//   - button: button index (default common.MouseButtonRight)
//
// Returns:
//   - CameraControllerOption: functional option to set the pan button
func WithPanButton(button int) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.panButton = button
	}
}

// WithResetKey sets the key that restores the default view.
//
// Parameters:
//   - keyCode: virtual key code (default common.KeyR)
//
// Returns:
//   - CameraControllerOption: functional option to set the reset key
func WithResetKey(keyCode uint32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.resetKey = keyCode
	}
}

// WithInside sets whether the pointer starts over the viewport.
// Windows that do not report an initial enter event should pass their hover state here.
//
// Parameters:
//   - inside: initial pointer-inside state (default false)
//
// Returns:
//   - CameraControllerOption: functional option to set the initial inside state
func WithInside(inside bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.inside = inside
	}
}
