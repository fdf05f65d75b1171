package camera

import "github.com/Carmen-Shannon/oxy-arcball/common"

// NormalizeMode selects how pointer coordinates are mapped into the [-1, 1] arcball disc.
type NormalizeMode int

const (
	// NormalizeIndependent divides x by the viewport width and y by its height.
	// The whole viewport maps onto the disc, which stretches the arcball into an
	// ellipse on non-square viewports.
	NormalizeIndependent NormalizeMode = iota

	// NormalizeShortestSide divides both axes by min(width, height) so the arcball
	// stays a true circle centered on the viewport. Points beyond the circle along
	// the longer axis land on the silhouette.
	NormalizeShortestSide
)

// Default tuning values for the arcball camera.
const (
	DefaultPanSensitivity    float32 = 5.0 // screen delta is divided by this before translating
	DefaultRotateSensitivity float32 = 1.0 // multiplier on the arcball angle
	DefaultZoomInFactor      float32 = 1.1
	DefaultZoomOutFactor     float32 = 0.9
	DefaultRadius            float32 = 1.0
	DefaultViewVolume        float32 = 100.0 // half-height of the orthographic view volume
)

// Config holds the tuning values of an arcball camera.
// The zero value is valid: non-positive fields fall back to the defaults above,
// the zero NormalizeMode is NormalizeIndependent, and clamping is on unless DisableClamp is set.
type Config struct {
	// PanSensitivity divides the raw pan delta. Larger values pan slower.
	PanSensitivity float32

	// RotateSensitivity multiplies the angle between the two arcball points.
	RotateSensitivity float32

	// ZoomInFactor is the uniform scale applied for a positive zoom input.
	ZoomInFactor float32

	// ZoomOutFactor is the uniform scale applied for a zero or negative zoom input.
	ZoomOutFactor float32

	// Normalize selects the screen to disc normalization.
	Normalize NormalizeMode

	// DisableClamp turns off clamping of normalized coordinates to [-1, 1].
	DisableClamp bool

	// ViewVolume is the half-height of the orthographic projection built for the GPU uniform.
	ViewVolume float32
}

// DefaultConfig returns a Config with every field set to its documented default.
//
// Returns:
//   - Config: the default camera configuration
func DefaultConfig() Config {
	return Config{
		PanSensitivity:    DefaultPanSensitivity,
		RotateSensitivity: DefaultRotateSensitivity,
		ZoomInFactor:      DefaultZoomInFactor,
		ZoomOutFactor:     DefaultZoomOutFactor,
		Normalize:         NormalizeIndependent,
		ViewVolume:        DefaultViewVolume,
	}
}

// withDefaults returns a copy of c with every unset or non-positive tuning value replaced by its default.
func (c Config) withDefaults() Config {
	c.PanSensitivity = common.FirstPositive(c.PanSensitivity, DefaultPanSensitivity)
	c.RotateSensitivity = common.FirstPositive(c.RotateSensitivity, DefaultRotateSensitivity)
	c.ZoomInFactor = common.FirstPositive(c.ZoomInFactor, DefaultZoomInFactor)
	c.ZoomOutFactor = common.FirstPositive(c.ZoomOutFactor, DefaultZoomOutFactor)
	c.ViewVolume = common.FirstPositive(c.ViewVolume, DefaultViewVolume)
	if c.Normalize != NormalizeShortestSide {
		c.Normalize = NormalizeIndependent
	}
	return c
}
