/*
Package splinefit implements points, affine transformations and the numeric
predicates shared by the B-spline fitting packages.

Package bspline holds the curve fitting engine, package splinefile reads and
writes points and fitted splines, package render turns a fit into pictures
and tables.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package splinefit

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D-point. Data points, control points and curve samples are
// all pairs.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P creates a pair from coordinates x and y.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// String formats a pair as "(x,y)".
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", p.X(), p.Y())
}

// F returns both coordinates of a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsFinite is a predicate: are both coordinates finite?
func (p Pair) IsFinite() bool {
	return IsFinite(p.X()) && IsFinite(p.Y())
}

// Equal compares two pairs, up to ε.
func (p Pair) Equal(q Pair) bool {
	return Is0(p.X()-q.X()) && Is0(p.Y()-q.Y())
}

// Dist is the Euclidean distance between two pairs.
func (p Pair) Dist(q Pair) float64 {
	return cmplx.Abs(complex128(q - p))
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// === Affine Transformations ================================================

// AT is an affine transformation of the plane. B-spline curves are affinely
// invariant: transforming the control points transforms the curve.
//
// ATs are immutable. The zero value is the identity.
type AT struct {
	m *mat.Dense // 3×3 in homogeneous coordinates, last row is (0 0 1)
}

func affine(a, b, c, d, e, f float64) AT {
	return AT{m: mat.NewDense(3, 3, []float64{a, b, c, d, e, f, 0, 0, 1})}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return affine(1, 0, 0, 0, 1, 0)
}

// Translation transform. Translate a point by v.
func Translation(v Pair) AT {
	return affine(1, 0, v.X(), 0, 1, v.Y())
}

// Scaling transform. Scale x and y independently, relative to the origin.
func Scaling(sx, sy float64) AT {
	return affine(sx, 0, 0, 0, sy, 0)
}

func (t AT) matrix() *mat.Dense {
	if t.m == nil {
		return Identity().m
	}
	return t.m
}

// Debug Stringer for an affine transform.
func (t AT) String() string {
	m := t.matrix()
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g]",
		m.At(0, 0), m.At(0, 1), m.At(0, 2), m.At(1, 0), m.At(1, 1), m.At(1, 2))
}

// Combine chains two transformations: the result applies t first, then u.
func (t AT) Combine(u AT) AT {
	var m mat.Dense
	m.Mul(u.matrix(), t.matrix())
	return AT{m: &m}
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (t AT) Transform(p Pair) Pair {
	m := t.matrix()
	x, y := p.F()
	return P(
		m.At(0, 0)*x+m.At(0, 1)*y+m.At(0, 2),
		m.At(1, 0)*x+m.At(1, 1)*y+m.At(1, 2),
	)
}
