package bspline

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/splinefit"
)

// Validate checks if a spline can be evaluated: degree ≥ 1, knots in
// ascending order and a control point for every basis function.
func (s *Spline) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: spline is nil", ErrInsufficientControlPoints)
	}
	if !s.Knots.IsNonDecreasing() {
		return fmt.Errorf("%w: knots are not in ascending order", ErrDegenerateInput)
	}
	return checkSupport(s.Controls, s.Degree, s.Knots)
}

// At evaluates the spline at parameter u. u is clamped to the knot domain.
// At the last knot the curve is evaluated as the limit from the left, which
// for a clamped knot vector is the last control point.
func (s *Spline) At(u float64) splinefit.Pair {
	n := min(len(s.Controls), s.Knots.BasisCount(s.Degree))
	if n <= 0 {
		return splinefit.Origin
	}
	lo, hi := s.Knots.Domain()
	if u >= hi {
		return evaluate(hi, s.Controls[:n], s.Degree, s.Knots, basisFromLeft)
	}
	return evaluate(max(u, lo), s.Controls[:n], s.Degree, s.Knots, Basis)
}

// Samples returns a lazy sequence of curve points, see function Samples.
func (s *Spline) Samples(step float64) (iter.Seq[splinefit.Pair], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return Samples(s.Controls, s.Degree, s.Knots, step)
}

// Curve samples the spline into a polyline, see function Samples.
func (s *Spline) Curve(step float64) ([]splinefit.Pair, error) {
	seq, err := s.Samples(step)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// ControlPolygon returns a copy of the control points.
func (s *Spline) ControlPolygon() []splinefit.Pair {
	return slices.Clone(s.Controls)
}

// Transformed returns the image of a spline under an affine transformation.
// As B-splines are affinely invariant, only the control points are
// transformed.
func (s *Spline) Transformed(at splinefit.AT) *Spline {
	ctrls := make([]splinefit.Pair, len(s.Controls))
	for i, c := range s.Controls {
		ctrls[i] = at.Transform(c)
	}
	return &Spline{
		Degree:   s.Degree,
		Knots:    s.Knots.Clone(),
		Controls: ctrls,
	}
}
