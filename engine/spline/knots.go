package spline

import (
	m "math"

	"github.com/astaben/tracery/engine/math"
)

// KnotVector is a non-decreasing sequence of parameter values defining the
// basis-function support of a spline. All generators here produce clamped
// (open) vectors: the first and last degree+1 knots are repeated, so the
// curve interpolates its end control points.
type KnotVector []float64

// IsNonDecreasing reports whether the knots are valid, each no smaller than
// the one before it.
func (k KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(k); i++ {
		if k[i] < k[i-1] {
			return false
		}
	}
	return true
}

// Creates and returns a clamped knot vector with evenly spaced interior
// knots 1, 2, ... for count control points of the given degree. count must
// exceed degree for the result to be a usable clamped vector.
func UniformKnots(degree, count int) KnotVector {
	out := make(KnotVector, 0, count+degree+1)
	for i := 0; i <= degree; i++ {
		out = append(out, 0)
	}
	for i := 1; i <= count-degree-1; i++ {
		out = append(out, float64(i))
	}
	end := float64(count - degree)
	for i := 0; i <= degree; i++ {
		out = append(out, end)
	}
	return out
}

// Creates and returns a clamped knot vector whose interior knots follow the
// cumulative chord length between successive points, scaled into the same
// span UniformKnots would cover. Coincident points degenerate to a zero
// total chord; that falls back to uniform spacing.
func ChordLengthKnots(degree int, points []math.Vec3) KnotVector {
	return chordKnots(degree, points, func(d float64) float64 { return d })
}

// Creates and returns a clamped knot vector like ChordLengthKnots, but
// accumulating the square root of each segment length. The damping keeps
// one long segment from crowding the parameterization of the others.
func SqrtChordLengthKnots(degree int, points []math.Vec3) KnotVector {
	return chordKnots(degree, points, m.Sqrt)
}

func chordKnots(degree int, points []math.Vec3, segment func(float64) float64) KnotVector {
	count := len(points)
	cum := make([]float64, count)
	total := 0.0
	for i := 1; i < count; i++ {
		total += segment(points[i].Distance(points[i-1]))
		cum[i] = total
	}
	if total <= 0 {
		return UniformKnots(degree, count)
	}

	span := float64(count - degree)
	out := make(KnotVector, 0, count+degree+1)
	for i := 0; i <= degree; i++ {
		out = append(out, 0)
	}
	for i := degree + 1; i < count; i++ {
		out = append(out, cum[i-degree]/total*span)
	}
	for i := 0; i <= degree; i++ {
		out = append(out, span)
	}
	return out
}
