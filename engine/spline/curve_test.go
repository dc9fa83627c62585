package spline

import (
	"errors"
	m "math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astaben/tracery/engine/core"
	"github.com/astaben/tracery/engine/math"
)

func quarterCircle(t *testing.T) *Curve {
	t.Helper()
	c, err := NewCurve(2,
		[]math.Vec3{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[]float64{1, m.Sqrt2 / 2, 1},
		KnotVector{0, 0, 0, 1, 1, 1},
	)
	require.NoError(t, err)
	return c
}

func TestNewCurve(t *testing.T) {
	control := []math.Vec3{{0, 0, 0}, {1, 2, 0}, {3, 0, 1}}

	t.Run("Valid", func(t *testing.T) {
		c, err := NewCurve(2, control, nil, UniformKnots(2, len(control)))
		require.NoError(t, err)
		require.Equal(t, 2, c.Degree)
		require.Equal(t, []float64{1, 1, 1}, c.Weights, "nil weights fill in as ones")
	})

	t.Run("KnotArity", func(t *testing.T) {
		_, err := NewCurve(2, control, nil, KnotVector{0, 0, 0, 1})
		require.Error(t, err)
		require.True(t, errors.Is(err, core.ErrIllegalParameters))
	})

	t.Run("WeightArity", func(t *testing.T) {
		_, err := NewCurve(2, control, []float64{1, 1}, UniformKnots(2, len(control)))
		require.Error(t, err)
		require.True(t, errors.Is(err, core.ErrIllegalParameters))
	})

	t.Run("DecreasingKnots", func(t *testing.T) {
		_, err := NewCurve(2, control, nil, KnotVector{0, 0, 0, 1, 0.5, 1})
		require.Error(t, err)
		require.True(t, errors.Is(err, core.ErrIllegalParameters))
	})

	t.Run("DegreeTooLow", func(t *testing.T) {
		_, err := NewCurve(0, control, nil, KnotVector{0, 0, 1, 1})
		require.Error(t, err)
	})

	t.Run("TooFewControlPoints", func(t *testing.T) {
		_, err := NewCurve(3, control, nil, KnotVector{0, 0, 0, 0, 1, 1, 1})
		require.Error(t, err)
	})
}

func TestCurveDomain(t *testing.T) {
	c, err := NewCurve(2,
		[]math.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}},
		nil, UniformKnots(2, 5))
	require.NoError(t, err)

	lo, hi := c.Domain()
	require.Equal(t, 0.0, lo)
	require.Equal(t, 3.0, hi)
}

func TestCurvePoint(t *testing.T) {
	t.Run("EndpointInterpolationIsExact", func(t *testing.T) {
		control := []math.Vec3{{0, 0, 0}, {1, 2, 0}, {3, 0, 1}}
		c, err := NewCurve(2, control, nil, UniformKnots(2, len(control)))
		require.NoError(t, err)

		lo, hi := c.Domain()
		require.Equal(t, control[0], c.Point(lo))
		require.Equal(t, control[2], c.Point(hi))
	})

	t.Run("ParameterIsClampedNeverRejected", func(t *testing.T) {
		control := []math.Vec3{{0, 0, 0}, {1, 2, 0}, {3, 0, 1}}
		c, err := NewCurve(2, control, nil, UniformKnots(2, len(control)))
		require.NoError(t, err)

		require.Equal(t, control[0], c.Point(-100))
		require.Equal(t, control[2], c.Point(100))
	})

	t.Run("DegreeOneIsThePolyline", func(t *testing.T) {
		c, err := NewCurve(1,
			[]math.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
			nil, UniformKnots(1, 3))
		require.NoError(t, err)

		require.True(t, c.Point(0.5).Compare(math.NewVec3(0.5, 0, 0), 1e-12))
		require.True(t, c.Point(1).Compare(math.NewVec3(1, 0, 0), 1e-12))
		require.True(t, c.Point(1.5).Compare(math.NewVec3(1, 0.5, 0), 1e-12))
	})

	t.Run("CubicBezierValues", func(t *testing.T) {
		c, err := NewCurve(3,
			[]math.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
			nil, KnotVector{0, 0, 0, 0, 1, 1, 1, 1})
		require.NoError(t, err)

		require.True(t, c.Point(0.5).Compare(math.NewVec3(0.5, 0.75, 0), 1e-12))
		require.True(t, c.Point(0.25).Compare(math.NewVec3(0.15625, 0.5625, 0), 1e-12))
	})

	t.Run("WeightsBendTheCurve", func(t *testing.T) {
		// A rational quadratic with these weights is an exact quarter
		// circle; every point sits on the unit circle.
		c := quarterCircle(t)
		for _, u := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
			require.InDelta(t, 1.0, c.Point(u).Length(), 1e-9, "radius at u=%v", u)
		}
	})

	t.Run("FreeFunctionMatchesMethod", func(t *testing.T) {
		c := quarterCircle(t)
		for _, u := range []float64{0, 0.3, 0.6, 1} {
			require.Equal(t, c.Point(u),
				EvaluatePoint(u, c.Degree, c.Knots, c.ControlPoints, c.Weights))
		}
	})

	t.Run("NilWeightsActAsOnes", func(t *testing.T) {
		control := []math.Vec3{{0, 0, 0}, {1, 2, 0}, {3, 0, 1}}
		knots := UniformKnots(2, len(control))
		for _, u := range []float64{0.2, 0.5, 0.8} {
			unweighted := EvaluatePoint(u, 2, knots, control, nil)
			weighted := EvaluatePoint(u, 2, knots, control, []float64{1, 1, 1})
			require.Equal(t, weighted, unweighted)
		}
	})
}

func TestCurveLength(t *testing.T) {
	t.Run("UnitSegment", func(t *testing.T) {
		c, err := NewCurve(1,
			[]math.Vec3{{1, 1, 1}, {1, 0, 1}},
			nil, UniformKnots(1, 2))
		require.NoError(t, err)
		require.InDelta(t, 1.0, c.Length(), 1e-9)
	})

	t.Run("CollapsedControlNet", func(t *testing.T) {
		// Duplicated end control points slow the parameterization down
		// but the trace is still the straight unit segment.
		c, err := NewCurve(3,
			[]math.Vec3{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}, {1, 0, 0}},
			nil, KnotVector{0, 0, 0, 0, 1, 1, 1, 1})
		require.NoError(t, err)
		require.InDelta(t, 1.0, c.Length(), 0.01)
	})

	t.Run("QuarterCircle", func(t *testing.T) {
		c := quarterCircle(t)
		require.InDelta(t, m.Pi/2, c.Length(), 1e-4)
	})

	t.Run("ResolutionFallsBackToDefault", func(t *testing.T) {
		c := quarterCircle(t)
		require.Equal(t, c.Length(), c.LengthAt(0))
		require.Equal(t, c.Length(), c.LengthAt(-3))
	})

	t.Run("CoarseResolutionStaysClose", func(t *testing.T) {
		c := quarterCircle(t)
		require.InDelta(t, c.LengthAt(DefaultLengthResolution), c.LengthAt(100), 1e-3)
	})
}

func TestControlPointsFromFitPoints(t *testing.T) {
	fit := []math.Vec3{{0, 0, 0}, {1, 2, 3}, {4, 5, 6}}
	control := ControlPointsFromFitPoints(fit)

	require.Equal(t, fit, control)

	// The pass returns a copy, not the caller's slice.
	control[0] = math.NewVec3(9, 9, 9)
	require.Equal(t, math.NewVec3(0, 0, 0), fit[0])
}
