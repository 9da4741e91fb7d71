package bspline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
	"gonum.org/v1/gonum/mat"
)

// tracer writes to trace with key 'bspline'
func tracer() tracing.Trace {
	return tracing.Select("bspline")
}

const (
	// Cubic is the degree of splines produced by Fit.
	Cubic = 3
	// DefaultStep is the parameter step for sampling a curve.
	DefaultStep = 0.01
	// DefaultConditionTolerance is the largest condition number of a
	// coefficient matrix Solve will accept.
	DefaultConditionTolerance = 1e12
)

const fdStep = 1e-6      // step for finite differences
const upperOffset = 1e-5 // BoundaryOffset evaluates this far in front of the last knot

var (
	// ErrDegenerateInput indicates fewer than 2 points, invalid coordinates
	// or points which all coincide.
	ErrDegenerateInput = errors.New("degenerate input points")
	// ErrInvalidDegree indicates a spline degree the operation cannot work with.
	ErrInvalidDegree = errors.New("invalid spline degree")
	// ErrSingularSystem indicates a coefficient matrix which is singular or
	// too ill-conditioned to be solved.
	ErrSingularSystem = errors.New("singular interpolation system")
	// ErrInsufficientControlPoints indicates fewer control points than basis functions.
	ErrInsufficientControlPoints = errors.New("insufficient control points")
	// ErrInvalidStep indicates a sampling step outside of (0,1].
	ErrInvalidStep = errors.New("invalid sampling step")
)

// BoundaryMode selects how the end condition at the upper end of the
// parameter range is evaluated.
type BoundaryMode int

const (
	// BoundaryOneSided takes the second derivative as the limit from the left
	// at the last knot.
	BoundaryOneSided BoundaryMode = iota
	// BoundaryOffset takes the second derivative at a fixed distance of 1e-5
	// in front of the last knot.
	BoundaryOffset
)

func (b BoundaryMode) String() string {
	switch b {
	case BoundaryOneSided:
		return "one-sided"
	case BoundaryOffset:
		return "offset"
	}
	return fmt.Sprintf("BoundaryMode(%d)", int(b))
}

// ParseBoundaryMode is the inverse of BoundaryMode.String.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one-sided", "onesided", "":
		return BoundaryOneSided, nil
	case "offset":
		return BoundaryOffset, nil
	}
	return BoundaryOneSided, fmt.Errorf("unknown boundary mode %q", s)
}

// Config collects the parameters of a fit. Clients should start from
// DefaultConfig() and change what they need.
type Config struct {
	Degree             int          // degree of the spline, Fit supports Cubic only
	Boundary           BoundaryMode // evaluation of the upper end condition
	ConditionTolerance float64      // maximum condition number of N
	Step               float64      // sampling step for Fitting.Curve
}

// DefaultConfig returns the configuration Fit uses if none is given.
func DefaultConfig() *Config {
	return &Config{
		Degree:             Cubic,
		Boundary:           BoundaryOneSided,
		ConditionTolerance: DefaultConditionTolerance,
		Step:               DefaultStep,
	}
}

// Spline is a non-rational B-spline curve in the plane.
// Splines are values: operations on them return new splines.
type Spline struct {
	Degree   int              // degree k
	Knots    KnotVector       // non-decreasing, clamped for fitted splines
	Controls []splinefit.Pair // control polygon
}

// Fitting collects the results of interpolating a set of points.
type Fitting struct {
	Points []splinefit.Pair // data points, as given
	Params []float64        // chord length parameter of each data point
	N      *mat.Dense       // coefficient matrix
	D      *mat.Dense       // target matrix
	Spline *Spline          // fitted spline, control points solve N·P = D
	step   float64
}
