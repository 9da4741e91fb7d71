package splinefile

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/npillmayer/splinefit"
	"go.uber.org/multierr"
)

// ReadPoints reads data points, one per line, with x and y separated by
// white space or a comma. Empty lines and lines starting with '#' are
// skipped. All malformed lines are reported, not just the first one.
func ReadPoints(r io.Reader) ([]splinefit.Pair, error) {
	var points []splinefit.Pair
	var errs error
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return unicode.IsSpace(r) || r == ','
		})
		p, err := parsePair(fields)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineno, err))
			continue
		}
		points = append(points, p)
	}
	errs = multierr.Append(errs, sc.Err())
	if errs != nil {
		return nil, errs
	}
	tracer().Debugf("read %d points", len(points))
	return points, nil
}

// WritePoints writes points in the format ReadPoints reads, one "x y" per line.
func WritePoints(w io.Writer, points []splinefit.Pair) error {
	bw := bufio.NewWriter(w)
	if err := writePairs(bw, points); err != nil {
		return err
	}
	return bw.Flush()
}

var pointPattern = regexp.MustCompile(`\(([^)]+)\)`)

// ParsePointList parses points written as a list of parenthesized pairs,
// e.g.
//
//	(0, 1), (1, 2), (2, 3), (3, 4)
//
// Anything outside of parentheses is ignored.
func ParsePointList(s string) ([]splinefit.Pair, error) {
	matches := pointPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no points in %q", ErrMalformed, s)
	}
	var points []splinefit.Pair
	var errs error
	for i, m := range matches {
		p, err := parsePair(strings.Split(m[1], ","))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: point %d %q: %v", ErrMalformed, i, m[0], err))
			continue
		}
		points = append(points, p)
	}
	if errs != nil {
		return nil, errs
	}
	return points, nil
}
