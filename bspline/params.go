package bspline

import (
	"fmt"

	"github.com/npillmayer/splinefit"
	"gonum.org/v1/gonum/floats"
)

// ChordLengthParams assigns a parameter value to every data point,
// proportional to the cumulative distance along the polygon through the
// points. The first point gets 0, the last one gets 1.
//
// Returns ErrDegenerateInput for less than 2 points, for points with NaN or
// Inf coordinates, and if all points coincide.
func ChordLengthParams(points []splinefit.Pair) ([]float64, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrDegenerateInput, len(points))
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: point %d has invalid coordinate %v", ErrDegenerateInput, i, p)
		}
	}
	chords := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		if points[i].Equal(points[i-1]) {
			tracer().Infof("points %d and %d coincide, the curve will have a corner", i-1, i)
		}
		chords[i] = points[i].Dist(points[i-1])
	}
	t := floats.CumSum(make([]float64, len(chords)), chords)
	total := t[len(t)-1]
	if total == 0 {
		return nil, fmt.Errorf("%w: all %d points coincide", ErrDegenerateInput, len(points))
	}
	if !splinefit.IsFinite(total) {
		return nil, fmt.Errorf("%w: chord length overflows", ErrDegenerateInput)
	}
	for i := range t {
		t[i] /= total // not multiplied by 1/total: t[last] has to be exactly 1
	}
	if t[0] != 0 || t[len(t)-1] != 1 || !KnotVector(t).IsNonDecreasing() {
		return nil, fmt.Errorf("%w: parameters out of order: %v", ErrDegenerateInput, t)
	}
	tracer().Debugf("chord length parameters = %v", t)
	return t, nil
}
