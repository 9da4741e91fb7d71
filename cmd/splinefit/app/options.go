package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/npillmayer/splinefit/bspline"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Options are the settings of a splinefit run, from flags and an optional
// configuration file.
type Options struct {
	ConfigFile string
	Points     string
	OutDir     string
	Step       float64
	Boundary   string
	Tolerance  float64
	Trace      string
	Verbose    bool
	SVG        bool
	Samples    bool
	Watch      bool
	Jobs       int
}

// NewOptions returns options with default values.
func NewOptions() *Options {
	return &Options{
		Step:      bspline.DefaultStep,
		Boundary:  bspline.BoundaryOneSided.String(),
		Tolerance: bspline.DefaultConditionTolerance,
		Trace:     "error",
		Jobs:      runtime.NumCPU(),
	}
}

// AddFlags adds flags for the options to fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFile, "config", "c", o.ConfigFile, "YAML configuration file")
	fs.StringVarP(&o.Points, "points", "p", o.Points, `points to interpolate, as "(x0, y0) (x1, y1) ..."`)
	fs.StringVarP(&o.OutDir, "out", "o", o.OutDir, "output directory (default: directory of the input file)")
	fs.Float64Var(&o.Step, "step", o.Step, "parameter step for sampling the curve, in (0,1]")
	fs.StringVar(&o.Boundary, "boundary", o.Boundary, "evaluation of the end condition: one-sided or offset")
	fs.Float64Var(&o.Tolerance, "tolerance", o.Tolerance, "largest accepted condition number of the system")
	fs.StringVar(&o.Trace, "trace", o.Trace, "trace level: error, info or debug")
	fs.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "print the matrices N, D and P")
	fs.BoolVar(&o.SVG, "svg", o.SVG, "write an SVG picture of the fit")
	fs.BoolVar(&o.Samples, "samples", o.Samples, "write the sampled curve as a point file")
	fs.BoolVarP(&o.Watch, "watch", "w", o.Watch, "fit input files again whenever they change")
	fs.IntVarP(&o.Jobs, "jobs", "j", o.Jobs, "number of input files fitted concurrently")
}

// FileConfig is the content of a configuration file. Absent entries leave
// the corresponding option alone.
type FileConfig struct {
	OutDir    *string  `yaml:"out"`
	Step      *float64 `yaml:"step"`
	Boundary  *string  `yaml:"boundary"`
	Tolerance *float64 `yaml:"tolerance"`
	Trace     *string  `yaml:"trace"`
	Verbose   *bool    `yaml:"verbose"`
	SVG       *bool    `yaml:"svg"`
	Samples   *bool    `yaml:"samples"`
	Jobs      *int     `yaml:"jobs"`
}

// LoadConfigFile reads a YAML configuration file. Unknown keys are an error.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc := &FileConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return fc, nil
}

// Merge copies settings from a configuration file into o, except for those
// which have been set explicitly on the command line.
func (o *Options) Merge(fc *FileConfig, changed func(flag string) bool) {
	if fc == nil {
		return
	}
	mergeValue(&o.OutDir, fc.OutDir, "out", changed)
	mergeValue(&o.Step, fc.Step, "step", changed)
	mergeValue(&o.Boundary, fc.Boundary, "boundary", changed)
	mergeValue(&o.Tolerance, fc.Tolerance, "tolerance", changed)
	mergeValue(&o.Trace, fc.Trace, "trace", changed)
	mergeValue(&o.Verbose, fc.Verbose, "verbose", changed)
	mergeValue(&o.SVG, fc.SVG, "svg", changed)
	mergeValue(&o.Samples, fc.Samples, "samples", changed)
	mergeValue(&o.Jobs, fc.Jobs, "jobs", changed)
}

func mergeValue[T any](dst *T, src *T, flag string, changed func(string) bool) {
	if src != nil && !changed(flag) {
		*dst = *src
	}
}

// Validate checks the options for consistency.
func (o *Options) Validate(args []string) error {
	if o.Points == "" && len(args) == 0 {
		return errors.New("no input: give point files or --points")
	}
	if o.Watch && len(args) == 0 {
		return errors.New("--watch needs point files")
	}
	if !(o.Step > 0 && o.Step <= 1) {
		return fmt.Errorf("%w: %v", bspline.ErrInvalidStep, o.Step)
	}
	if o.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative: %v", o.Tolerance)
	}
	if _, err := bspline.ParseBoundaryMode(o.Boundary); err != nil {
		return err
	}
	switch strings.ToLower(o.Trace) {
	case "error", "info", "debug":
	default:
		return fmt.Errorf("unknown trace level %q", o.Trace)
	}
	if o.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1: %d", o.Jobs)
	}
	return nil
}

// FitConfig translates the options into a configuration for bspline.Fit.
func (o *Options) FitConfig() (*bspline.Config, error) {
	mode, err := bspline.ParseBoundaryMode(o.Boundary)
	if err != nil {
		return nil, err
	}
	config := bspline.DefaultConfig()
	config.Boundary = mode
	config.Step = o.Step
	config.ConditionTolerance = o.Tolerance
	return config, nil
}
