// Package spline evaluates NURBS curves: knot generation, Cox-de Boor basis
// functions, rational point evaluation and numeric arc length. Everything is
// a pure function over an explicit curve descriptor; the package holds no
// state and spawns nothing.
package spline

import (
	m "math"

	"github.com/astaben/tracery/engine/core"
	"github.com/astaben/tracery/engine/math"
)

const (
	// DefaultLengthResolution is the segment count of the arc length
	// integration. Fixed, not adaptive, so length estimates stay
	// reproducible across runs and machines.
	DefaultLengthResolution = 1000

	// Parameters within this distance of a domain end evaluate to the end
	// control point exactly.
	endpointEpsilon = 1e-8

	// Below this the rational weight sum is treated as degenerate.
	weightEpsilon = 1e-10
)

// Curve is a NURBS curve descriptor: transient evaluation input, not an
// entity. The number of knots must equal len(ControlPoints)+Degree+1 and
// Weights runs parallel to ControlPoints.
type Curve struct {
	Degree        int
	Knots         KnotVector
	ControlPoints []math.Vec3
	Weights       []float64
}

// NewCurve validates a curve descriptor. Nil weights mean an unweighted
// curve and fill in as all ones. The arity relation between degree, control
// points and knots follows The NURBS Book: len(knots) ==
// len(control)+degree+1.
func NewCurve(degree int, control []math.Vec3, weights []float64, knots KnotVector) (*Curve, error) {
	if degree < 1 {
		return nil, core.ParameterError("curve degree must be at least 1, got %d", degree)
	}
	if len(control) < degree+1 {
		return nil, core.ParameterError("a degree %d curve needs at least %d control points, got %d",
			degree, degree+1, len(control))
	}
	if len(knots) != len(control)+degree+1 {
		return nil, core.ParameterError("curve needs %d knots for %d control points of degree %d, got %d",
			len(control)+degree+1, len(control), degree, len(knots))
	}
	if !knots.IsNonDecreasing() {
		return nil, core.ParameterError("curve knots must be non-decreasing")
	}
	if weights == nil {
		weights = make([]float64, len(control))
		for i := range weights {
			weights[i] = 1
		}
	} else if len(weights) != len(control) {
		return nil, core.ParameterError("curve needs one weight per control point, got %d weights for %d points",
			len(weights), len(control))
	}

	return &Curve{
		Degree:        degree,
		Knots:         knots,
		ControlPoints: control,
		Weights:       weights,
	}, nil
}

// Domain returns the clamped parameter range of the curve,
// [knots[degree], knots[n+1]] for n+1 control points.
func (c *Curve) Domain() (lo, hi float64) {
	return c.Knots[c.Degree], c.Knots[len(c.ControlPoints)]
}

// Point evaluates the curve position at parameter u. u is clamped to the
// domain, never rejected.
func (c *Curve) Point(u float64) math.Vec3 {
	return EvaluatePoint(u, c.Degree, c.Knots, c.ControlPoints, c.Weights)
}

// Length approximates the arc length at the default resolution.
func (c *Curve) Length() float64 {
	return c.LengthAt(DefaultLengthResolution)
}

// LengthAt approximates the arc length by summing the chord lengths of a
// resolution-segment polyline over the clamped domain, plus a final segment
// to the exact end parameter to absorb the accumulated step error. A
// non-positive resolution falls back to the default.
func (c *Curve) LengthAt(resolution int) float64 {
	if resolution <= 0 {
		resolution = DefaultLengthResolution
	}
	lo, hi := c.Domain()
	step := (hi - lo) / float64(resolution)

	length := 0.0
	prev := c.Point(lo)
	u := lo
	for i := 0; i < resolution; i++ {
		u += step
		p := c.Point(u)
		length += prev.Distance(p)
		prev = p
	}
	return length + prev.Distance(c.Point(hi))
}

// EvaluatePoint computes the rational curve position
//
//	sum(w_i * N_i(u) * P_i) / sum(w_i * N_i(u))
//
// at parameter u for the given degree, knots, control points and weights.
// Nil weights mean an unweighted curve. u is clamped to the curve domain.
// Within endpointEpsilon of a domain end the exact end control point is
// returned, which also covers the top knot value the half-open basis spans
// cannot see. A degenerate weight sum below weightEpsilon checks the clamped
// bounds once more, then falls through to the unnormalized accumulation.
func EvaluatePoint(u float64, degree int, knots KnotVector, control []math.Vec3, weights []float64) math.Vec3 {
	n := len(control) - 1
	lo := knots[degree]
	hi := knots[n+1]
	u = math.Clamp(u, lo, hi)

	if m.Abs(u-lo) < endpointEpsilon {
		return control[0]
	}
	if m.Abs(u-hi) < endpointEpsilon {
		return control[n]
	}

	var sum math.Vec3
	weightSum := 0.0
	for i := 0; i <= n; i++ {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		b := w * BasisFunction(i, degree, u, knots)
		sum = sum.Add(control[i].MulScalar(b))
		weightSum += b
	}

	if weightSum < weightEpsilon {
		if u == lo {
			return control[0]
		}
		if u == hi {
			return control[n]
		}
		return sum
	}
	return sum.MulScalar(1.0 / weightSum)
}

// ControlPointsFromFitPoints returns the fit points unchanged as control
// points. True interpolation would solve a global linear system through the
// fit points; drawings built on fitted splines treat the fit points as the
// control net directly, so the pass is a copy.
func ControlPointsFromFitPoints(fit []math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(fit))
	copy(out, fit)
	return out
}
