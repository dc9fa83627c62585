package spline

// Knot spans at or below this width contribute nothing to the basis
// recurrence; the guard keeps repeated knots from dividing by zero.
const knotSpanEpsilon = 1e-10

// BasisFunction evaluates the i-th B-spline basis function of the given
// degree at u over the knot vector, by the Cox-de Boor recurrence. The
// degree-0 spans are half open, knots[i] <= u < knots[i+1], including at the
// top of the knot range; curve evaluation is responsible for clamping u so
// the final knot value still lands on the curve.
//
// The recurrence is run bottom up over a single row of the triangular table
// rather than recursively, so the cost is degree squared instead of
// exponential. i must satisfy 0 <= i and i+degree+1 < len(knots).
func BasisFunction(i, degree int, u float64, knots KnotVector) float64 {
	vals := make([]float64, degree+1)
	for j := 0; j <= degree; j++ {
		if knots[i+j] <= u && u < knots[i+j+1] {
			vals[j] = 1
		}
	}

	for k := 1; k <= degree; k++ {
		for j := 0; j <= degree-k; j++ {
			var left, right float64
			if span := knots[i+j+k] - knots[i+j]; span > knotSpanEpsilon {
				left = (u - knots[i+j]) / span * vals[j]
			}
			if span := knots[i+j+k+1] - knots[i+j+1]; span > knotSpanEpsilon {
				right = (knots[i+j+k+1] - u) / span * vals[j+1]
			}
			vals[j] = left + right
		}
	}
	return vals[0]
}
