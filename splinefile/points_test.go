package splinefile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinefit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestReadPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := "# zig-zag\n0 0\n0 2\n\n2,2\n  2\t0  \n4, 0\n"
	points, err := ReadPoints(strings.NewReader(input))
	require.NoError(t, err)
	want := []splinefit.Pair{
		splinefit.P(0, 0), splinefit.P(0, 2), splinefit.P(2, 2), splinefit.P(2, 0), splinefit.P(4, 0),
	}
	assert.Equal(t, want, points)
}

func TestReadPointsCollectsErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := "0 0\n1\n2 2\nx 3\n4 4 4\n"
	points, err := ReadPoints(strings.NewReader(input))
	assert.Nil(t, points)
	require.ErrorIs(t, err, ErrMalformed)
	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "line 2")
	assert.Contains(t, errs[1].Error(), "line 4")
	assert.Contains(t, errs[2].Error(), "line 5")
}

func TestPointsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []splinefit.Pair{splinefit.P(0.1, -2), splinefit.P(1e-9, 3.75), splinefit.P(1e20, 0)}
	var buf bytes.Buffer
	require.NoError(t, WritePoints(&buf, points))
	assert.Equal(t, "0.1 -2.0\n1e-09 3.75\n1e+20 0.0\n", buf.String())
	read, err := ReadPoints(&buf)
	require.NoError(t, err)
	assert.Equal(t, points, read)
}

func TestParsePointList(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points, err := ParsePointList("Example: (0, 1), (1, 2) (2,3)(3 , 4.5)")
	require.NoError(t, err)
	want := []splinefit.Pair{splinefit.P(0, 1), splinefit.P(1, 2), splinefit.P(2, 3), splinefit.P(3, 4.5)}
	assert.Equal(t, want, points)
}

func TestParsePointListRejects(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := ParsePointList("0 1 2 3")
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParsePointList("(0, 1) (1) (a, b)")
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Len(t, multierr.Errors(err), 2)
}
