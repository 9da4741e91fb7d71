package bspline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinefit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func assembleTestSystem(t *testing.T, mode BoundaryMode) (*mat.Dense, *mat.Dense) {
	t.Helper()
	params, err := ChordLengthParams(testpoints())
	require.NoError(t, err)
	knots, err := ClampedKnots(params, Cubic)
	require.NoError(t, err)
	N, D, err := Assemble(Cubic, params, knots, testpoints(), mode)
	require.NoError(t, err)
	return N, D
}

func TestAssembleShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	N, D := assembleTestSystem(t, BoundaryOneSided)
	r, c := N.Dims()
	assert.Equal(t, 7, r)
	assert.Equal(t, 7, c)
	r, c = D.Dims()
	assert.Equal(t, 7, r)
	assert.Equal(t, 2, c)
	// anchor rows
	diff(t, []float64{1, 0, 0, 0, 0, 0, 0}, mat.Row(nil, 0, N))
	diff(t, []float64{0, 0, 0, 0, 0, 0, 1}, mat.Row(nil, 6, N))
	// interior rows: three entries, partition of unity
	for i := 2; i <= 4; i++ {
		row := mat.Row(nil, i, N)
		var sum float64
		for j, v := range row {
			if j < i-1 || j > i+1 {
				assert.Equal(t, 0.0, v, "N[%d,%d]", i, j)
			}
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "row %d", i)
	}
	diff(t, []float64{0, 0.25, 7.0 / 12, 1.0 / 6, 0, 0, 0}, mat.Row(nil, 2, N), approx)
}

func TestAssembleTargets(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, D := assembleTestSystem(t, BoundaryOneSided)
	want := [][]float64{{0, 0}, {0, 0}, {0, 2}, {2, 2}, {2, 0}, {0, 0}, {4, 0}}
	for i, w := range want {
		diff(t, w, mat.Row(nil, i, D))
	}
}

func TestAssembleBoundaryRows(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// for knot spacing h = 1/4 the natural end condition is
	// 6/h² · (P0 - 1.5 P1 + 0.5 P2) = 0
	for _, mode := range []BoundaryMode{BoundaryOneSided, BoundaryOffset} {
		N, _ := assembleTestSystem(t, mode)
		start := mat.Row(nil, 1, N)
		assert.InDelta(t, 96, start[0], 0.05, mode.String())
		assert.InDelta(t, -144, start[1], 0.05, mode.String())
		assert.InDelta(t, 48, start[2], 0.05, mode.String())
		end := mat.Row(nil, 5, N)
		assert.InDelta(t, 48, end[4], 0.05, mode.String())
		assert.InDelta(t, -144, end[5], 0.05, mode.String())
		assert.InDelta(t, 96, end[6], 0.05, mode.String())
		for j := 3; j < 7; j++ {
			assert.Equal(t, 0.0, start[j])
		}
		for j := 0; j < 4; j++ {
			assert.Equal(t, 0.0, end[j])
		}
	}
}

func TestAssembleRejects(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	params := []float64{0, 0.5, 1}
	points := []splinefit.Pair{P(0, 0), P(1, 1), P(2, 0)}
	knots, err := ClampedKnots(params, 2)
	require.NoError(t, err)
	_, _, err = Assemble(2, params, knots, points, BoundaryOneSided)
	assert.ErrorIs(t, err, ErrInvalidDegree)
	knots, err = ClampedKnots(params, 3)
	require.NoError(t, err)
	_, _, err = Assemble(3, params, knots, points[:2], BoundaryOneSided)
	assert.ErrorIs(t, err, ErrDegenerateInput)
	_, _, err = Assemble(3, params, knots[1:], points, BoundaryOneSided)
	assert.ErrorIs(t, err, ErrDegenerateInput)
	_, _, err = Assemble(3, params, knots, points, BoundaryMode(7))
	assert.Error(t, err)
}

func TestBoundaryModeStrings(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, mode := range []BoundaryMode{BoundaryOneSided, BoundaryOffset} {
		m, err := ParseBoundaryMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, m)
	}
	_, err := ParseBoundaryMode("sideways")
	assert.Error(t, err)
}
