package bspline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/splinefit"
	"gonum.org/v1/gonum/mat"
)

// AsString returns a spline as a (debugging) string: its degree, its knots
// and its control polygon, e.g.
//
//	degree 3, knots [0 0 0 0 0.5 1 1 1 1], controls (0.0000,0.0000) -- (0.3333,1.0000) -- …
func AsString(s *Spline) string {
	if s == nil {
		return "<nil spline>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "degree %d, knots [", s.Degree)
	for i, k := range s.Knots {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.4g", round(k))
	}
	b.WriteString("], controls ")
	for i, c := range s.Controls {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(ptstring(c))
	}
	return b.String()
}

func ptstring(p splinefit.Pair) string {
	if !p.IsFinite() {
		return "(<unknown>)"
	}
	return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}

func formatMatrix(m mat.Matrix) string {
	return fmt.Sprintf("%.4g", mat.Formatted(m, mat.Prefix("    "), mat.Squeeze()))
}

// denseToPairs reads the rows of an r×2 matrix as pairs.
func denseToPairs(m mat.Matrix) []splinefit.Pair {
	r, _ := m.Dims()
	pairs := make([]splinefit.Pair, r)
	for i := range pairs {
		pairs[i] = splinefit.P(m.At(i, 0), m.At(i, 1))
	}
	return pairs
}
