package bspline

// Basis evaluates the B-spline basis function B(i,k) for a knot vector at
// parameter value u, using the Cox–de Boor recursion.
//
// Knot intervals are half-open: a u equal to a knot belongs to the interval
// starting at this knot. Consequently every basis function vanishes at the
// last knot of a clamped knot vector. Where a knot span in the recursion has
// zero length, its term contributes 0.
//
// Indices outside of the range of basis functions yield 0.
func Basis(u float64, i, k int, knots KnotVector) float64 {
	return basis(u, i, k, knots, halfOpen)
}

// basisFromLeft is the variant of Basis with knot intervals open to the
// left. At a knot it yields the limit of Basis from the left.
func basisFromLeft(u float64, i, k int, knots KnotVector) float64 {
	return basis(u, i, k, knots, leftOpen)
}

type interval func(u, lo, hi float64) bool

func halfOpen(u, lo, hi float64) bool {
	return lo <= u && u < hi
}

func leftOpen(u, lo, hi float64) bool {
	return lo < u && u <= hi
}

func basis(u float64, i, k int, knots KnotVector, in interval) float64 {
	if i < 0 || k < 0 || i+k+1 >= len(knots) {
		return 0
	}
	return coxDeBoor(u, i, k, knots, in)
}

func coxDeBoor(u float64, i, k int, knots KnotVector, in interval) float64 {
	if k == 0 {
		if in(u, knots[i], knots[i+1]) {
			return 1.0
		}
		return 0.0
	}
	var c1, c2 float64
	if span := knots[i+k] - knots[i]; span != 0 {
		c1 = (u - knots[i]) / span * coxDeBoor(u, i, k-1, knots, in)
	}
	if span := knots[i+k+1] - knots[i+1]; span != 0 {
		c2 = (knots[i+k+1] - u) / span * coxDeBoor(u, i+1, k-1, knots, in)
	}
	return c1 + c2
}

// --- Derivatives -----------------------------------------------------------

// basisFunc is the signature of Basis and basisFromLeft.
type basisFunc func(u float64, i, k int, knots KnotVector) float64

// BasisDerivative approximates the first derivative of B(i,k) at u by a
// forward difference.
func BasisDerivative(u float64, i, k int, knots KnotVector) float64 {
	return forwardDiff(Basis, u, i, k, knots)
}

// BasisSecondDerivative approximates the second derivative of B(i,k) at u
// by a forward difference of forward differences.
func BasisSecondDerivative(u float64, i, k int, knots KnotVector) float64 {
	return forwardDiff2(Basis, u, i, k, knots)
}

func forwardDiff(b basisFunc, u float64, i, k int, knots KnotVector) float64 {
	return (b(u+fdStep, i, k, knots) - b(u, i, k, knots)) / fdStep
}

func forwardDiff2(b basisFunc, u float64, i, k int, knots KnotVector) float64 {
	return (forwardDiff(b, u+fdStep, i, k, knots) - forwardDiff(b, u, i, k, knots)) / fdStep
}

func backwardDiff(b basisFunc, u float64, i, k int, knots KnotVector) float64 {
	return (b(u, i, k, knots) - b(u-fdStep, i, k, knots)) / fdStep
}

func backwardDiff2(b basisFunc, u float64, i, k int, knots KnotVector) float64 {
	return (backwardDiff(b, u, i, k, knots) - backwardDiff(b, u-fdStep, i, k, knots)) / fdStep
}
