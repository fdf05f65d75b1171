package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the threshold below which lengths and angles are treated as zero.
const Epsilon = 1e-6

// PivotTransform wraps op so that it is applied about pivot instead of the origin.
// The result is T(pivot) * op * T(-pivot), which leaves pivot fixed for any linear op.
//
// Parameters:
//   - pivot: the point the operation is centered on
//   - op: a linear transform expressed about the origin (rotation, uniform scale)
//
// Returns:
//   - mgl32.Mat4: the pivot-centered transform
func PivotTransform(pivot mgl32.Vec3, op mgl32.Mat4) mgl32.Mat4 {
	to := mgl32.Translate3D(pivot.X(), pivot.Y(), pivot.Z())
	back := mgl32.Translate3D(-pivot.X(), -pivot.Y(), -pivot.Z())
	return to.Mul4(op).Mul4(back)
}

// AngleBetween returns the unsigned angle in radians between a and b.
// Returns 0 if either vector has zero length.
//
// Parameters:
//   - a, b: the vectors to compare
//
// Returns:
//   - float32: angle in radians in [0, Pi]
func AngleBetween(a, b mgl32.Vec3) float32 {
	_, angle := axisAngle(a, b)
	return float32(angle)
}

// RotationBetween returns the unit axis and angle of the shortest rotation carrying a onto b.
// ok is false when the vectors are zero, parallel or antiparallel, in which case no unique
// rotation exists.
//
// Parameters:
//   - a, b: the start and end directions
//
// Returns:
//   - mgl32.Vec3: the unit rotation axis, a x b normalized
//   - float32: the rotation angle in radians
//   - bool: whether a rotation was found
func RotationBetween(a, b mgl32.Vec3) (mgl32.Vec3, float32, bool) {
	axis, angle := axisAngle(a, b)
	n := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if n < Epsilon*Epsilon || angle < Epsilon {
		return mgl32.Vec3{}, 0, false
	}
	return mgl32.Vec3{float32(axis[0] / n), float32(axis[1] / n), float32(axis[2] / n)}, float32(angle), true
}

// axisAngle computes a x b and atan2(|a x b|, a . b) in float64 on normalized inputs.
// A float32 acos of the dot product rounds to zero below roughly 3e-4 rad, which would drop
// small pointer motions.
func axisAngle(a, b mgl32.Vec3) ([3]float64, float64) {
	ax, ay, az := float64(a.X()), float64(a.Y()), float64(a.Z())
	bx, by, bz := float64(b.X()), float64(b.Y()), float64(b.Z())
	la := math.Sqrt(ax*ax + ay*ay + az*az)
	lb := math.Sqrt(bx*bx + by*by + bz*bz)
	if la < Epsilon || lb < Epsilon {
		return [3]float64{}, 0
	}
	ax, ay, az = ax/la, ay/la, az/la
	bx, by, bz = bx/lb, by/lb, bz/lb

	c := [3]float64{ay*bz - az*by, az*bx - ax*bz, ax*by - ay*bx}
	cross := math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
	return c, math.Atan2(cross, ax*bx+ay*by+az*bz)
}

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CirclePoints samples a circle of the given radius around center in the XY plane.
// The returned ring can be drawn as a guide for the arcball silhouette.
//
// Parameters:
//   - center: circle center; its Z component is kept for every point
//   - radius: circle radius
//   - segments: number of samples (values below 3 are raised to 3)
//
// Returns:
//   - []mgl32.Vec3: the sampled points in counter-clockwise order
func CirclePoints(center mgl32.Vec3, radius float32, segments int) []mgl32.Vec3 {
	if segments < 3 {
		segments = 3
	}
	step := 2 * math.Pi / float64(segments)
	pts := make([]mgl32.Vec3, segments)
	for i := range segments {
		s, c := math.Sincos(step * float64(i))
		pts[i] = mgl32.Vec3{
			center.X() + radius*float32(c),
			center.Y() + radius*float32(s),
			center.Z(),
		}
	}
	return pts
}
