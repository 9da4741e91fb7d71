/*
Package render turns the results of a spline fit into something to look at:
an SVG picture of data points, control polygon and curve, and tables of the
matrices involved.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/bspline"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// ErrNothingToRender indicates that all layers of a picture are empty.
var ErrNothingToRender = errors.New("nothing to render")

// Layers are the parts of a spline fit picture, drawn bottom to top as
// control polygon, curve, data points. Any of them may be empty.
type Layers struct {
	Points   []splinefit.Pair // data points, red dots
	Controls []splinefit.Pair // control polygon, dashed with square markers
	Curve    []splinefit.Pair // sampled curve, blue polyline
}

// Options for SVG output. Zero values select defaults.
type Options struct {
	Title  string  // defaults to "Cubic B-Spline Curve"
	Width  int     // in pixels, default 800; height follows the aspect ratio
	Margin float64 // fraction of the picture size, default 0.05
}

// Bounds returns the smallest rectangle enclosing all points of all layers.
func Bounds(layers Layers) (polyclip.Rectangle, error) {
	var pg polyclip.Polygon
	for _, l := range [][]splinefit.Pair{layers.Points, layers.Controls, layers.Curve} {
		if len(l) > 0 {
			pg = append(pg, contour(l))
		}
	}
	if len(pg) == 0 {
		return polyclip.Rectangle{}, ErrNothingToRender
	}
	return pg.BoundingBox(), nil
}

func contour(pairs []splinefit.Pair) polyclip.Contour {
	c := make(polyclip.Contour, 0, len(pairs))
	for _, p := range pairs {
		c = append(c, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

func options(opts *Options) Options {
	o := Options{Title: "Cubic B-Spline Curve", Width: 800, Margin: 0.05}
	if opts != nil {
		if opts.Title != "" {
			o.Title = opts.Title
		}
		if opts.Width > 0 {
			o.Width = opts.Width
		}
		if opts.Margin > 0 {
			o.Margin = opts.Margin
		}
	}
	return o
}

// WriteSVG draws the layers as an SVG document. The y-axis points upwards.
func WriteSVG(w io.Writer, layers Layers, opts *Options) error {
	o := options(opts)
	bbox, err := Bounds(layers)
	if err != nil {
		return err
	}
	if err := checkFinite(layers); err != nil {
		return err
	}
	vp := newViewport(bbox, o.Margin)
	return vp.write(w, Layers{
		Points:   transform(vp.at, layers.Points),
		Controls: transform(vp.at, layers.Controls),
		Curve:    transform(vp.at, layers.Curve),
	}, o)
}

// WriteFitSVG draws the data points, the control polygon and the curve of
// a fit, sampled with step. The picture is bounded by points and control
// polygon, as the curve lies in the convex hull of its control points.
func WriteFitSVG(w io.Writer, f *bspline.Fitting, step float64, opts *Options) error {
	if f == nil || f.Spline == nil {
		return ErrNothingToRender
	}
	o := options(opts)
	layers := Layers{Points: f.Points, Controls: f.Spline.Controls}
	bbox, err := Bounds(layers)
	if err != nil {
		return err
	}
	if err := checkFinite(layers); err != nil {
		return err
	}
	vp := newViewport(bbox, o.Margin)
	view := f.Spline.Transformed(vp.at) // the image of the curve is the curve of the image
	curve, err := view.Curve(step)
	if err != nil {
		return err
	}
	return vp.write(w, Layers{
		Points:   transform(vp.at, f.Points),
		Controls: view.Controls,
		Curve:    curve,
	}, o)
}

func checkFinite(layers Layers) error {
	for _, l := range [][]splinefit.Pair{layers.Points, layers.Controls, layers.Curve} {
		for _, p := range l {
			if !p.IsFinite() {
				return fmt.Errorf("cannot render point %v", p)
			}
		}
	}
	return nil
}

func transform(at splinefit.AT, pairs []splinefit.Pair) []splinefit.Pair {
	if len(pairs) == 0 {
		return nil
	}
	t := make([]splinefit.Pair, len(pairs))
	for i, p := range pairs {
		t[i] = at.Transform(p)
	}
	return t
}

// viewport maps picture coordinates to the SVG view box, which starts at
// (0,0) and has its y-axis pointing down.
type viewport struct {
	at            splinefit.AT
	width, height float64 // of the view box
	unit          float64 // stroke width
}

func newViewport(bbox polyclip.Rectangle, margin float64) viewport {
	width, height := bbox.Max.X-bbox.Min.X, bbox.Max.Y-bbox.Min.Y
	size := math.Max(width, height)
	if size == 0 {
		size = 1
	}
	width, height = math.Max(width, size/10), math.Max(height, size/10)
	m := margin * size
	flip := splinefit.Scaling(1, -1)
	shift := splinefit.Translation(splinefit.P(m-bbox.Min.X, bbox.Max.Y+m))
	vp := viewport{
		at:     flip.Combine(shift),
		width:  width + 2*m,
		height: height + 2*m,
		unit:   size / 200,
	}
	tracer().Debugf("SVG view box %g×%g, transform %s", vp.width, vp.height, vp.at)
	return vp
}

// write draws layers, which are already in view box coordinates.
func (vp viewport) write(w io.Writer, layers Layers, o Options) error {
	unit := vp.unit
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%d" height="%d">`+"\n",
		num(vp.width), num(vp.height), o.Width, int(math.Round(float64(o.Width)*vp.height/vp.width)))
	fmt.Fprintf(bw, "<title>%s</title>\n", escape(o.Title))
	if len(layers.Controls) > 0 {
		fmt.Fprintf(bw, `<g id="control-polygon" fill="none" stroke="black" stroke-width="%s">`+"\n", num(unit/2))
		fmt.Fprintf(bw, `<polyline stroke-dasharray="%s %s" points="%s"/>`+"\n", num(3*unit), num(2*unit), polyline(layers.Controls))
		s := 2 * unit
		for _, p := range layers.Controls {
			fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s"/>`+"\n", num(p.X()-s/2), num(p.Y()-s/2), num(s), num(s))
		}
		bw.WriteString("</g>\n")
	}
	if len(layers.Curve) > 0 {
		fmt.Fprintf(bw, `<g id="curve" fill="none" stroke="blue" stroke-width="%s">`+"\n", num(unit))
		fmt.Fprintf(bw, `<polyline points="%s"/>`+"\n", polyline(layers.Curve))
		bw.WriteString("</g>\n")
	}
	if len(layers.Points) > 0 {
		bw.WriteString(`<g id="data-points" fill="red">` + "\n")
		for _, p := range layers.Points {
			fmt.Fprintf(bw, `<circle cx="%s" cy="%s" r="%s"/>`+"\n", num(p.X()), num(p.Y()), num(1.5*unit))
		}
		bw.WriteString("</g>\n")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func polyline(pairs []splinefit.Pair) string {
	b := make([]byte, 0, len(pairs)*16)
	for i, p := range pairs {
		if i > 0 {
			b = append(b, ' ')
		}
		b = fmt.Appendf(b, "%s,%s", num(p.X()), num(p.Y()))
	}
	return string(b)
}

func num(x float64) string {
	return fmt.Sprintf("%.6g", splinefit.Zap(x))
}

func escape(s string) string {
	var b []byte
	for _, r := range s {
		switch r {
		case '<':
			b = append(b, "&lt;"...)
		case '>':
			b = append(b, "&gt;"...)
		case '&':
			b = append(b, "&amp;"...)
		default:
			b = fmt.Appendf(b, "%c", r)
		}
	}
	return string(b)
}
