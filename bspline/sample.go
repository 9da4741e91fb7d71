package bspline

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/npillmayer/splinefit"
)

// Samples returns the points of the spline with control points ctrls,
// degree k and knot vector knots, at parameter values 0, step, 2·step, …
// up to, but excluding, 1. The sequence has ceil(1/step) elements, is
// computed lazily and may be iterated any number of times. It works on a
// copy of its arguments.
//
// Returns ErrInvalidDegree for k < 1, ErrInvalidStep for a step outside
// (0,1] and ErrInsufficientControlPoints if there are fewer control points
// than basis functions, or fewer than k+1 basis functions.
func Samples(ctrls []splinefit.Pair, k int, knots KnotVector, step float64) (iter.Seq[splinefit.Pair], error) {
	if err := checkSupport(ctrls, k, knots); err != nil {
		return nil, err
	}
	count, err := sampleCount(step)
	if err != nil {
		return nil, err
	}
	knots = knots.Clone()
	ctrls = slices.Clone(ctrls[:knots.BasisCount(k)])
	return func(yield func(splinefit.Pair) bool) {
		for j := 0; j < count; j++ {
			if !yield(evaluate(float64(j)*step, ctrls, k, knots, Basis)) {
				return
			}
		}
	}, nil
}

// SampleCurve is Samples, collected into a slice.
func SampleCurve(ctrls []splinefit.Pair, k int, knots KnotVector, step float64) ([]splinefit.Pair, error) {
	seq, err := Samples(ctrls, k, knots, step)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

func checkSupport(ctrls []splinefit.Pair, k int, knots KnotVector) error {
	if k < 1 {
		return fmt.Errorf("%w: degree must be at least 1, got %d", ErrInvalidDegree, k)
	}
	n := knots.BasisCount(k)
	if n < k+1 {
		return fmt.Errorf("%w: %d knots define %d basis functions of degree %d, need %d",
			ErrInsufficientControlPoints, len(knots), n, k, k+1)
	}
	if len(ctrls) < n {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientControlPoints, len(ctrls), n)
	}
	return nil
}

// maxSamples bounds the length of a sample sequence.
const maxSamples = 1 << 26

// sampleCount is the number of parameters j·step < 1, which is ceil(1/step)
// in exact arithmetic. It counts with the same float products the sampler
// evaluates, so that neither 1 nor anything beyond it is sampled.
func sampleCount(step float64) (int, error) {
	if math.IsNaN(step) || step <= 0 || step > 1 {
		return 0, fmt.Errorf("%w: step must be in (0,1], got %g", ErrInvalidStep, step)
	}
	if 1/step > maxSamples {
		return 0, fmt.Errorf("%w: step %g yields more than %d samples", ErrInvalidStep, step, maxSamples)
	}
	n := int(math.Ceil(1 / step))
	for n > 1 && float64(n-1)*step >= 1 {
		n--
	}
	for float64(n)*step < 1 {
		n++
	}
	return n, nil
}

// evaluate sums up ctrls[i]·B(i,k)(u). len(ctrls) is the number of basis
// functions to consider.
func evaluate(u float64, ctrls []splinefit.Pair, k int, knots KnotVector, b basisFunc) splinefit.Pair {
	var sum splinefit.Pair
	for i, c := range ctrls {
		if w := b(u, i, k, knots); w != 0 {
			sum += c.Scaled(w)
		}
	}
	return sum
}
