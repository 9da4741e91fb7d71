package bspline

import (
	"github.com/npillmayer/splinefit"
)

// Fit finds the cubic B-spline interpolating points, which are traversed in
// the order given. This is the central API function of this package.
//
// Clients may provide a configuration. If none is provided, i.e.
// config == nil, DefaultConfig() is used.
//
// Fit returns one of ErrDegenerateInput, ErrInvalidDegree or
// ErrSingularSystem, wrapped with details, if the points cannot be
// interpolated.
func Fit(points []splinefit.Pair, config *Config) (*Fitting, error) {
	if config == nil {
		config = DefaultConfig()
	}
	t, err := ChordLengthParams(points)
	if err != nil {
		return nil, err
	}
	knots, err := ClampedKnots(t, config.Degree)
	if err != nil {
		return nil, err
	}
	N, D, err := Assemble(config.Degree, t, knots, points, config.Boundary)
	if err != nil {
		return nil, err
	}
	P, err := Solve(N, D, config.ConditionTolerance)
	if err != nil {
		return nil, err
	}
	spline := &Spline{
		Degree:   config.Degree,
		Knots:    knots,
		Controls: denseToPairs(P),
	}
	tracer().Infof("fitted %d points: %s", len(points), AsString(spline))
	return &Fitting{
		Points: append([]splinefit.Pair(nil), points...),
		Params: t,
		N:      N,
		D:      D,
		Spline: spline,
		step:   config.Step,
	}, nil
}

// MustFit is a helper which panics on errors.
func MustFit(points []splinefit.Pair, config *Config) *Fitting {
	f, err := Fit(points, config)
	if err != nil {
		panic(err)
	}
	return f
}

// Curve samples the fitted spline with the step of the fit's configuration.
func (f *Fitting) Curve() ([]splinefit.Pair, error) {
	step := f.step
	if step == 0 {
		step = DefaultStep
	}
	return f.Spline.Curve(step)
}

// Residual is the largest distance between a data point and the fitted
// curve at the point's parameter.
func (f *Fitting) Residual() float64 {
	var r float64
	for i, p := range f.Points {
		r = max(r, f.Spline.At(f.Params[i]).Dist(p))
	}
	return r
}
