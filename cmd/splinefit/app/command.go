/*
Package app implements the splinefit command: it reads points from files or
the command line, fits a cubic B-spline through them and writes the spline,
and optionally a picture and samples of the curve, to files.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/bspline"
	"github.com/npillmayer/splinefit/render"
	"github.com/npillmayer/splinefit/splinefile"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// tracer writes to trace with key 'splinefit.app'
func tracer() tracing.Trace {
	return tracing.Select("splinefit.app")
}

// traceKeys are the tracers whose level --trace controls.
var traceKeys = []string{"splinefit.app", "bspline", "splinefile", "render"}

// NewSplineFitCommand creates the root command. Fitting stops when ctx is
// cancelled, which matters for --watch only.
func NewSplineFitCommand(ctx context.Context) *cobra.Command {
	opts := NewOptions()
	cmd := &cobra.Command{
		Use:   "splinefit [flags] [point-file ...]",
		Short: "Fit cubic B-splines through points",
		Long: `splinefit interpolates points with a cubic B-spline, using chord length
parameterization and natural end conditions. Points are read from files
(one "x y" pair per line) or given with --points. For every input the
spline is saved as degree, control point count, knot vector and control
points.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigFile != "" {
				fc, err := LoadConfigFile(opts.ConfigFile)
				if err != nil {
					return err
				}
				opts.Merge(fc, cmd.Flags().Changed)
			}
			if err := opts.Validate(args); err != nil {
				return err
			}
			level := tracing.TraceLevelFromString(opts.Trace)
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
			r, err := newRunner(opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.run(ctx, args)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

// runner fits inputs with one set of options. Reports of concurrent fits
// are written to out one at a time.
type runner struct {
	opts   *Options
	config *bspline.Config
	now    func() time.Time
	mx     sync.Mutex
	out    io.Writer
}

func newRunner(opts *Options, out io.Writer) (*runner, error) {
	config, err := opts.FitConfig()
	if err != nil {
		return nil, err
	}
	return &runner{opts: opts, config: config, now: time.Now, out: out}, nil
}

func (r *runner) run(ctx context.Context, files []string) error {
	var errs error
	if r.opts.Points != "" {
		errs = multierr.Append(errs, r.fitPointList(r.opts.Points))
	}
	errs = multierr.Append(errs, r.fitFiles(files))
	if !r.opts.Watch {
		return errs
	}
	for _, err := range multierr.Errors(errs) {
		tracer().Errorf("%v", err)
	}
	return watch(ctx, files, r.fitFile)
}

// fitFiles fits every file, at most opts.Jobs at a time. A failing input does
// not stop the others; all errors are returned together.
func (r *runner) fitFiles(files []string) error {
	errs := make([]error, len(files))
	var g errgroup.Group
	g.SetLimit(r.opts.Jobs)
	for i, file := range files {
		g.Go(func() error {
			errs[i] = r.fitFile(file)
			return nil
		})
	}
	_ = g.Wait()
	return multierr.Combine(errs...)
}

func (r *runner) fitFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	points, err := splinefile.ReadPoints(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	dir := r.opts.OutDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return r.fit(path, points, filepath.Join(dir, stem+"_cubic"))
}

func (r *runner) fitPointList(s string) error {
	points, err := splinefile.ParsePointList(s)
	if err != nil {
		return fmt.Errorf("--points: %w", err)
	}
	name := splinefile.SaveName(r.now())
	return r.fit("--points", points, filepath.Join(r.opts.OutDir, strings.TrimSuffix(name, ".txt")))
}

// fit interpolates points and writes the results to files named base plus
// an extension.
func (r *runner) fit(input string, points []splinefit.Pair, base string) error {
	fitting, err := bspline.Fit(points, r.config)
	if err != nil {
		tracer().Errorf("%s: %v", input, err)
		return fmt.Errorf("%s: %w", input, err)
	}
	var report bytes.Buffer
	written := []string{base + ".txt"}
	if err := writeFile(written[0], func(w io.Writer) error {
		return splinefile.WriteSpline(w, fitting.Spline)
	}); err != nil {
		return err
	}
	if r.opts.Samples {
		curve, err := fitting.Curve()
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		written = append(written, base+"_samples.txt")
		if err := writeFile(written[len(written)-1], func(w io.Writer) error {
			return splinefile.WritePoints(w, curve)
		}); err != nil {
			return err
		}
	}
	if r.opts.SVG {
		written = append(written, base+".svg")
		if err := writeFile(written[len(written)-1], func(w io.Writer) error {
			return render.WriteFitSVG(w, fitting, r.config.Step, &render.Options{Title: filepath.Base(base)})
		}); err != nil {
			return err
		}
	}
	fmt.Fprintf(&report, "%s: %d points, %d control points, residual %.3g -> %s\n",
		input, len(points), len(fitting.Spline.Controls), fitting.Residual(), strings.Join(written, ", "))
	if r.opts.Verbose {
		if err := render.Report(&report, fitting); err != nil {
			return err
		}
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	_, err = r.out.Write(report.Bytes())
	return err
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
