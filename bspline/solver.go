package bspline

import (
	"fmt"
	"math"

	"github.com/npillmayer/splinefit"
	"gonum.org/v1/gonum/mat"
)

// Solve solves N·P = D for P, column by column of D, by LU decomposition of N.
//
// Returns ErrSingularSystem if N is not square, does not match D, or has a
// condition number above tolerance. A tolerance ≤ 0 selects
// DefaultConditionTolerance. The result is guaranteed to be free of NaN
// and Inf.
func Solve(N, D mat.Matrix, tolerance float64) (*mat.Dense, error) {
	r, c := N.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: coefficient matrix is %d×%d", ErrSingularSystem, r, c)
	}
	if dr, _ := D.Dims(); dr != r {
		return nil, fmt.Errorf("%w: target matrix has %d rows, need %d", ErrSingularSystem, dr, r)
	}
	if tolerance <= 0 {
		tolerance = DefaultConditionTolerance
	}
	var lu mat.LU
	lu.Factorize(N)
	if cond := lu.Cond(); math.IsNaN(cond) || cond > tolerance {
		tracer().Errorf("coefficient matrix has condition number %g", cond)
		return nil, fmt.Errorf("%w: condition number %g exceeds %g", ErrSingularSystem, cond, tolerance)
	}
	var P mat.Dense
	if err := lu.SolveTo(&P, false, D); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}
	pr, pc := P.Dims()
	for i := 0; i < pr; i++ {
		for j := 0; j < pc; j++ {
			if !splinefit.IsFinite(P.At(i, j)) {
				return nil, fmt.Errorf("%w: solution has invalid entry at (%d,%d)", ErrSingularSystem, i, j)
			}
		}
	}
	tracer().Debugf("P =\n%s", formatMatrix(&P))
	return &P, nil
}
