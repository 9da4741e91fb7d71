package splinefit

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Is0(0.000000008) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.Equal(t, 0.0, Zap(-1e-9))
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, "(3,2)", p.String())
	assert.InDelta(t, 5.0, P(0, 0).Dist(P(3, 4)), 1e-12)
	assert.False(t, P(math.NaN(), 1).IsFinite())
	assert.True(t, P(1e-9, 2).Equal(P(0, 2)))
	assert.Equal(t, P(1.5, 1), P(3, 2).Scaled(0.5))
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Translation(P(-1, -1)).Transform(P(1, 1)).Equal(Origin) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	// mirror at the x-axis, then shift up: the view of an SVG picture
	view := Scaling(1, -1).Combine(Translation(P(0, 3)))
	assert.True(t, view.Transform(P(2, 1)).Equal(P(2, 2)))
	assert.True(t, view.Transform(P(2, 3)).Equal(P(2, 0)))
}

func TestCombine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// scale first, then shift
	m := Scaling(2, 3).Combine(Translation(P(1, 1)))
	got := m.Transform(P(1, 1))
	assert.True(t, got.Equal(P(3, 4)), "got %v", got)
	// mirroring twice is the identity
	r := Scaling(-1, 1).Combine(Scaling(-1, 1))
	assert.True(t, r.Transform(P(1, 5)).Equal(P(1, 5)))
	assert.True(t, Identity().Transform(P(7, -2)).Equal(P(7, -2)))
	var zero AT
	assert.True(t, zero.Transform(P(7, -2)).Equal(P(7, -2)))
	assert.Equal(t, "[1,0,5|0,1,-1]", zero.Combine(Translation(P(5, -1))).String())
}
