// Package bspline fits interpolating cubic B-spline curves through a
// sequence of 2D points.
/*

The fitting follows the textbook route for global curve interpolation, as
found in

   The NURBS Book, 2nd ed. -- Les Piegl and Wayne Tiller
   Springer, 1997. Chapter 9.2 "Global Interpolation"

and, for the recursive definition of the basis functions,

   Carl de Boor: On Calculating with B-Splines.
   Journal of Approximation Theory 6 (1972)

Data points are parameterized by their cumulative chord length, the
parameters are padded to a clamped knot vector, and a square linear system
is built from the basis functions: one row per data point demanding that
the curve passes through it, plus two rows demanding a vanishing second
derivative at either end of the curve (a "natural" end condition). The
solution of the system are the control points of the spline.

Usage

Clients hand a slice of points to Fit(...):

   points := []splinefit.Pair{ P(0,0), P(0,2), P(2,2), P(2,0), P(4,0) }
   fitting, err := bspline.Fit(points, nil)

The returned Fitting carries every intermediate artifact -- parameters,
knot vector, the coefficient matrix N, the target matrix D -- and the
fitted Spline. A spline may be evaluated at a single parameter value or
sampled on a uniform grid over [0,1):

   curve, err := fitting.Spline.Curve(bspline.DefaultStep)

Every stage of the pipeline is exported as a function of its own
(ChordLengthParams, ClampedKnots, Basis, Assemble, Solve, Samples) and
none of them keeps state between calls. Fitting several curves
concurrently is safe.

Caveats

(1) Derivatives of basis functions are approximated by finite differences
with a step of 1e-6. This is sufficient for the end conditions, but no
more.

(2) The end condition at the upper end of the parameter range has to be
evaluated at a knot, where half-open knot intervals make every basis
function vanish. By default the package takes the one-sided limit from the
left. BoundaryOffset reproduces the older behaviour of evaluating slightly
in front of the knot.

(3) Only cubic splines are fitted. Basis evaluation and sampling work for
any degree k >= 1.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bspline
