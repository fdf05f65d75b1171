package common

import (
	"math"
	"time"
)

// Number is the set of numeric types accepted by FirstPositive.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// FirstPositive returns the first strictly positive value from the provided values,
// or the zero value if none is positive. Used to fill unset or invalid tuning values
// with their defaults.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first value greater than zero, or zero
func FirstPositive[T Number](values ...T) T {
	var zero T
	for _, v := range values {
		if v > zero {
			return v
		}
	}
	return zero
}

// FrameInterval converts a frame rate into the minimum duration of one frame.
// Fractional rates are kept (59.94 fps is not rounded down), and non-positive or NaN rates
// return 0, meaning uncapped.
//
// Parameters:
//   - fps: frames per second
//
// Returns:
//   - time.Duration: the frame interval, or 0 when uncapped
func FrameInterval(fps float64) time.Duration {
	if !(fps > 0) || math.IsInf(fps, 1) {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
