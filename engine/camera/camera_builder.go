package camera

// CameraBuilderOption is a functional option for configuring an arcball Camera.
type CameraBuilderOption func(*cameraImpl)

// WithRadius sets the distance of the default eye position from the pivot.
//
// Parameters:
//   - radius: eye distance, must be positive
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's radius
func WithRadius(radius float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.radius = radius
	}
}

// WithConfig replaces the whole camera configuration. Unset fields take their defaults.
//
// Parameters:
//   - cfg: the configuration to use
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's configuration
func WithConfig(cfg Config) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.cfg = cfg
	}
}

// WithPanSensitivity sets the divisor applied to pan deltas.
//
// Parameters:
//   - sensitivity: pan divisor, larger is slower
//
// Returns:
//   - CameraBuilderOption: a function that sets the pan sensitivity
func WithPanSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.cfg.PanSensitivity = sensitivity
	}
}

// WithRotateSensitivity sets the multiplier applied to arcball angles.
//
// Parameters:
//   - sensitivity: angle multiplier
//
// Returns:
//   - CameraBuilderOption: a function that sets the rotate sensitivity
func WithRotateSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.cfg.RotateSensitivity = sensitivity
	}
}

// WithZoomFactors sets the uniform scales used for zooming in and out.
//
// Parameters:
//   - in: scale for positive zoom input
//   - out: scale for zero or negative zoom input
//
// Returns:
//   - CameraBuilderOption: a function that sets the zoom factors
func WithZoomFactors(in, out float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.cfg.ZoomInFactor = in
		c.cfg.ZoomOutFactor = out
	}
}

// WithNormalizeMode selects how pointer coordinates are mapped onto the arcball disc.
//
// Parameters:
//   - mode: NormalizeIndependent or NormalizeShortestSide
//
// Returns:
//   - CameraBuilderOption: a function that sets the normalization mode
func WithNormalizeMode(mode NormalizeMode) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.cfg.Normalize = mode
	}
}

// WithViewportClamp enables or disables clamping of normalized pointer coordinates to [-1, 1].
//
// Parameters:
//   - enabled: true to clamp (default)
//
// Returns:
//   - CameraBuilderOption: a function that sets viewport clamping
func WithViewportClamp(enabled bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.cfg.DisableClamp = !enabled
	}
}

// WithViewVolume sets the half-height of the orthographic projection in the GPU uniform.
//
// Parameters:
//   - volume: half-height in world units
//
// Returns:
//   - CameraBuilderOption: a function that sets the view volume
func WithViewVolume(volume float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.cfg.ViewVolume = volume
	}
}
