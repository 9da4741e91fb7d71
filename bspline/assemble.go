package bspline

import (
	"fmt"

	"github.com/npillmayer/splinefit"
	"gonum.org/v1/gonum/mat"
)

// Assemble builds the linear system N·P = D for the control points P of a
// cubic spline interpolating points at parameters t. For n+1 points, N is
// (n+3)×(n+3) and D is (n+3)×2:
//
//	row 0      P[0] = p[0]
//	row 1      second derivative at t[0] is 0
//	row 2..n   curve at t[i-1] is p[i-1], using bases i-1, i, i+1
//	row n+1    second derivative at t[n] is 0
//	row n+2    P[n+2] = p[n]
//
// mode decides how the second derivative at t[n] is taken, where all basis
// functions vanish.
func Assemble(k int, t []float64, knots KnotVector, points []splinefit.Pair, mode BoundaryMode) (*mat.Dense, *mat.Dense, error) {
	if k != Cubic {
		return nil, nil, fmt.Errorf("%w: interpolation is implemented for degree %d, got %d",
			ErrInvalidDegree, Cubic, k)
	}
	if len(t) < 2 || len(points) != len(t) {
		return nil, nil, fmt.Errorf("%w: %d points for %d parameters", ErrDegenerateInput, len(points), len(t))
	}
	if len(knots) != len(t)+2*k {
		return nil, nil, fmt.Errorf("%w: knot vector of length %d does not match %d parameters",
			ErrDegenerateInput, len(knots), len(t))
	}
	if mode != BoundaryOneSided && mode != BoundaryOffset {
		return nil, nil, fmt.Errorf("unknown boundary mode %d", int(mode))
	}
	n := len(t) - 1
	size := n + 3
	N := mat.NewDense(size, size, nil)
	N.Set(0, 0, 1.0)
	for j := 0; j < 3; j++ {
		N.Set(1, j, forwardDiff2(Basis, t[0], j, k, knots))
	}
	for i := 2; i <= n; i++ {
		for j := i - 1; j <= i+1; j++ {
			N.Set(i, j, Basis(t[i-1], j, k, knots))
		}
	}
	for j := n; j < n+3; j++ {
		N.Set(n+1, j, upperSecondDerivative(mode, t[n], j, k, knots))
	}
	N.Set(n+2, n+2, 1.0)

	D := mat.NewDense(size, 2, nil)
	D.SetRow(0, xy(points[0]))
	for i := 1; i < n; i++ {
		D.SetRow(i+1, xy(points[i]))
	}
	D.SetRow(n+2, xy(points[n]))
	tracer().Debugf("N =\n%s", formatMatrix(N))
	tracer().Debugf("D =\n%s", formatMatrix(D))
	return N, D, nil
}

func upperSecondDerivative(mode BoundaryMode, u float64, i, k int, knots KnotVector) float64 {
	if mode == BoundaryOffset {
		return forwardDiff2(Basis, u-upperOffset, i, k, knots)
	}
	return backwardDiff2(basisFromLeft, u, i, k, knots)
}

func xy(p splinefit.Pair) []float64 {
	return []float64{p.X(), p.Y()}
}
