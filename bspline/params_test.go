package bspline

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinefit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var P = splinefit.P

// zig-zag test points, with corners at every data point
func testpoints() []splinefit.Pair {
	return []splinefit.Pair{P(0, 0), P(0, 2), P(2, 2), P(2, 0), P(4, 0)}
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestChordLengthParams(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	params, err := ChordLengthParams(testpoints())
	require.NoError(t, err)
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, params, approx)
}

func TestChordLengthParamsUneven(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	params, err := ChordLengthParams([]splinefit.Pair{P(0, 0), P(3, 4), P(3, 5), P(3, 5), P(3, 9)})
	require.NoError(t, err)
	diff(t, []float64{0, 0.5, 0.6, 0.6, 1}, params, approx)
	assert.Equal(t, 0.0, params[0])
	assert.Equal(t, 1.0, params[len(params)-1])
	assert.True(t, KnotVector(params).IsNonDecreasing())
}

func TestChordLengthParamsProperties(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := 2; n < 40; n++ {
		points := make([]splinefit.Pair, n)
		for i := range points {
			x := float64(i) * 0.37
			points[i] = P(x*x-3*x, math.Sin(x*7))
		}
		params, err := ChordLengthParams(points)
		require.NoError(t, err, "n = %d", n)
		assert.Len(t, params, n)
		assert.Equal(t, 0.0, params[0])
		assert.Equal(t, 1.0, params[n-1])
		assert.True(t, KnotVector(params).IsNonDecreasing(), "n = %d: %v", n, params)
	}
}

func TestChordLengthParamsDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	inputs := map[string][]splinefit.Pair{
		"empty":      nil,
		"single":     {P(1, 2)},
		"coincident": {P(1, 1), P(1, 1)},
		"all same":   {P(-2, 3), P(-2, 3), P(-2, 3), P(-2, 3)},
		"NaN":        {P(0, 0), P(math.NaN(), 1)},
		"Inf":        {P(0, 0), P(1, math.Inf(1))},
	}
	for name, points := range inputs {
		_, err := ChordLengthParams(points)
		if !errors.Is(err, ErrDegenerateInput) {
			t.Errorf("%s: expected ErrDegenerateInput, got %v", name, err)
		}
	}
}
