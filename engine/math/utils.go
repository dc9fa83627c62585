package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

const (
	// Epsilon is the double precision machine epsilon, the spacing between
	// 1.0 and the next representable value.
	Epsilon float64 = 2.220446049250313e-16
	// PointTolerance is the default coordinate tolerance for comparisons
	// and point welding.
	PointTolerance float64 = 1e-9
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Lerp linearly interpolates between a and b by t, unclamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns where value sits between a and b, unclamped.
// A collapsed interval maps everything to 0.
func InverseLerp(a, b, value float64) float64 {
	if b-a == 0 {
		return 0
	}
	return (value - a) / (b - a)
}

// EqualApprox reports whether a and b differ by no more than tolerance.
func EqualApprox(a, b, tolerance float64) bool {
	return m.Abs(a-b) <= tolerance
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * (m.Pi / 180.0)
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * (180.0 / m.Pi)
}
