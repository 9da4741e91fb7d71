/*
Package splinefile reads and writes the text formats around spline fitting:
lists of data points, and fitted splines.

A fitted spline is saved as

	3
	7
	0.0 0.0 0.0 0.0 0.25 0.5 0.75 1.0 1.0 1.0 1.0
	0.0 0.0
	…
	4.0 0.0

i.e., degree, number of control points, the knot vector on a single line,
followed by one control point per line. Numbers are written the way
Python's repr() writes floats, as existing tools producing and consuming
these files do.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package splinefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/bspline"
)

// tracer writes to trace with key 'splinefile'
func tracer() tracing.Trace {
	return tracing.Select("splinefile")
}

// ErrMalformed indicates input not conforming to a file format.
var ErrMalformed = errors.New("malformed input")

// SaveName returns a file name for saving a spline fitted at time t.
func SaveName(t time.Time) string {
	return "cubic_" + t.Format("2006-01-02_15-04-05") + ".txt"
}

// WriteSpline writes a spline in the saved-spline format.
func WriteSpline(w io.Writer, s *bspline.Spline) error {
	if err := s.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", s.Degree, len(s.Controls))
	for i, k := range s.Knots {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(FormatFloat(k))
	}
	bw.WriteByte('\n')
	if err := writePairs(bw, s.Controls); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadSpline reads a spline in the saved-spline format. The knot vector has
// to have exactly count + degree + 1 entries, and the spline has to be one
// WriteSpline would accept.
func ReadSpline(r io.Reader) (*bspline.Spline, error) {
	sc := bufio.NewScanner(r)
	lineno := 0
	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%w: missing %s", ErrMalformed, what)
		}
		lineno++
		return strings.TrimSpace(sc.Text()), nil
	}
	line, err := next("degree")
	if err != nil {
		return nil, err
	}
	degree, err := strconv.Atoi(line)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: degree: %v", ErrMalformed, lineno, err)
	}
	if degree < 1 {
		return nil, fmt.Errorf("%w: %w: %d", ErrMalformed, bspline.ErrInvalidDegree, degree)
	}
	if line, err = next("control point count"); err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(line)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: line %d: control point count %q", ErrMalformed, lineno, line)
	}
	if line, err = next("knot vector"); err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	knots := make(bspline.KnotVector, len(fields))
	for i, f := range fields {
		if knots[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, fmt.Errorf("%w: line %d: knot %d: %v", ErrMalformed, lineno, i, err)
		}
	}
	if len(knots) != count+degree+1 {
		return nil, fmt.Errorf("%w: %d knots for %d control points of degree %d",
			ErrMalformed, len(knots), count, degree)
	}
	if !knots.IsNonDecreasing() {
		return nil, fmt.Errorf("%w: knots are not in ascending order", ErrMalformed)
	}
	ctrls := make([]splinefit.Pair, count)
	for i := range ctrls {
		if line, err = next(fmt.Sprintf("control point %d", i)); err != nil {
			return nil, err
		}
		if ctrls[i], err = parsePair(strings.Fields(line)); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineno, err)
		}
	}
	for sc.Scan() {
		lineno++
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, fmt.Errorf("%w: line %d: unexpected content after control points", ErrMalformed, lineno)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	s := &bspline.Spline{Degree: degree, Knots: knots, Controls: ctrls}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	tracer().Debugf("read spline %s", bspline.AsString(s))
	return s, nil
}

// FormatFloat formats a float the way Python's repr() does: shortest
// representation which reads back to the same value, at least one
// fractional digit in fixed notation, exponent notation for exponents
// below -4 or from 16 upwards.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	f := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(f, '.') {
		f += ".0"
	}
	return f
}

func writePairs(w *bufio.Writer, pairs []splinefit.Pair) error {
	for _, p := range pairs {
		w.WriteString(FormatFloat(p.X()))
		w.WriteByte(' ')
		w.WriteString(FormatFloat(p.Y()))
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

func parsePair(fields []string) (splinefit.Pair, error) {
	if len(fields) != 2 {
		return splinefit.Origin, fmt.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return splinefit.Origin, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return splinefit.Origin, err
	}
	return splinefit.P(x, y), nil
}
