package spline

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasisFunctionDegreeZero(t *testing.T) {
	knots := KnotVector{0, 1, 2, 3}

	cases := []struct {
		i    int
		u    float64
		want float64
	}{
		{0, 0, 1},
		{0, 0.5, 1},
		{0, 1, 0}, // half open: the span end belongs to the next span
		{1, 1, 1},
		{1, 1.999, 1},
		{1, 2, 0},
		{2, 2, 1},
		{2, 3, 0}, // half open at the top of the knot range too
		{1, 0.5, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, BasisFunction(tc.i, 0, tc.u, knots),
			"BasisFunction(%d, 0, %v)", tc.i, tc.u)
	}
}

func TestBasisFunctionBernstein(t *testing.T) {
	// On fully clamped knots the cubic basis reduces to the Bernstein
	// polynomials, which have closed forms to compare against.
	knots := KnotVector{0, 0, 0, 0, 1, 1, 1, 1}

	for _, u := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		want := []float64{
			(1 - u) * (1 - u) * (1 - u),
			3 * u * (1 - u) * (1 - u),
			3 * u * u * (1 - u),
			u * u * u,
		}
		for i := 0; i < 4; i++ {
			require.InDelta(t, want[i], BasisFunction(i, 3, u, knots), 1e-12,
				"basis %d at u=%v", i, u)
		}
	}
}

func TestBasisFunctionPartitionOfUnity(t *testing.T) {
	cases := []struct {
		name   string
		degree int
		count  int
	}{
		{"Linear", 1, 4},
		{"Quadratic", 2, 5},
		{"Cubic", 3, 6},
		{"CubicBezier", 3, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			knots := UniformKnots(tc.degree, tc.count)
			lo := knots[tc.degree]
			hi := knots[tc.count]

			// Strictly below hi: the half-open spans leave the top knot
			// value to the evaluator's clamp.
			for s := 0; s < 20; s++ {
				u := lo + (hi-lo)*float64(s)/20
				sum := 0.0
				for i := 0; i < tc.count; i++ {
					sum += BasisFunction(i, tc.degree, u, knots)
				}
				require.InDelta(t, 1.0, sum, 1e-9, "degree %d at u=%v", tc.degree, u)
			}
		})
	}
}

func TestBasisFunctionRepeatedKnots(t *testing.T) {
	t.Run("ZeroWidthSpansContributeNothing", func(t *testing.T) {
		got := BasisFunction(0, 1, 0.5, KnotVector{0, 0, 0, 1})
		require.Equal(t, 0.0, got)
		require.False(t, m.IsNaN(got))
	})

	t.Run("InteriorRepeatedKnotStaysFinite", func(t *testing.T) {
		knots := KnotVector{0, 0, 0, 1, 1, 2, 2, 2}
		sum := 0.0
		for i := 0; i < 5; i++ {
			b := BasisFunction(i, 2, 1.5, knots)
			require.False(t, m.IsNaN(b))
			sum += b
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})
}
