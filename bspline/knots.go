package bspline

import "fmt"

// KnotVector is a non-decreasing sequence of parameter values, partitioning
// the parameter domain of a spline into intervals.
type KnotVector []float64

// ClampedKnots creates a clamped knot vector from a parameter sequence t,
// by putting k copies of 0 in front of it and k copies of 1 behind it.
// Together with t[0] = 0 and t[last] = 1 this makes the boundary knots
// (k+1)-fold, forcing a curve through its first and last control point.
func ClampedKnots(t []float64, k int) (KnotVector, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: degree must be at least 1, got %d", ErrInvalidDegree, k)
	}
	if len(t) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 parameters, got %d", ErrDegenerateInput, len(t))
	}
	knots := make(KnotVector, 0, len(t)+2*k)
	for i := 0; i < k; i++ {
		knots = append(knots, 0)
	}
	knots = append(knots, t...)
	for i := 0; i < k; i++ {
		knots = append(knots, 1)
	}
	if !knots.IsNonDecreasing() {
		return nil, fmt.Errorf("%w: parameters must lie in [0,1] in ascending order", ErrDegenerateInput)
	}
	return knots, nil
}

// IsNonDecreasing is a predicate: is every knot ≥ its predecessor?
func (knots KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return false
		}
	}
	return true
}

// BasisCount returns the number of basis functions of degree k this knot
// vector defines.
func (knots KnotVector) BasisCount(k int) int {
	return len(knots) - k - 1
}

// Domain returns the first and last knot.
func (knots KnotVector) Domain() (float64, float64) {
	if len(knots) == 0 {
		return 0, 0
	}
	return knots[0], knots[len(knots)-1]
}

// Clone returns a copy of a knot vector.
func (knots KnotVector) Clone() KnotVector {
	return append(KnotVector(nil), knots...)
}
