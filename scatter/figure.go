// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	plotfont "gonum.org/v1/plot/font"
)

const (
	figWidth  = 6 * vg.Inch
	figHeight = 5 * vg.Inch

	// Placement of the axes within the figure, as fractions of the
	// figure size.
	axesLeft, axesRight = 0.125, 0.9
	axesBottom, axesTop = 0.11, 0.88

	// Baseline of the title's top edge.
	titleTop = 0.98
)

var (
	pointColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	pointRadius = vg.Points(3)
	arrowColor  = color.RGBA{R: 0xff, A: 0xff}
)

// arrowWidth is the width of a projection arrow's shaft in data
// units.
const arrowWidth = 0.1

// A Figure is a rendered-on-demand scatter plot with its title.
type Figure struct {
	plot       *plot.Plot
	title      string
	titleStyle text.Style

	// corr is the correlation annotation, or nil.
	corr *annotation
}

// NewFigure lays out the scatter plot of ys against xs described by
// opts without saving or showing it. A nil opts is equivalent to
// &Options{}.
func NewFigure(xs, ys Series, opts *Options) (*Figure, error) {
	if opts == nil {
		opts = &Options{}
	}
	n := len(xs.Values)
	if n != len(ys.Values) {
		return nil, fmt.Errorf("%w: %d xs, %d ys", ErrLengthMismatch, n, len(ys.Values))
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}
	for _, r := range []*Range{opts.XLim, opts.YLim} {
		if r != nil {
			if err := r.check(); err != nil {
				return nil, err
			}
		}
	}

	p := plot.New()
	p.BackgroundColor = nil
	p.HideAxes()
	p.X.Padding, p.Y.Padding = 0, 0

	// Points. Each is a filled circle with a black edge.
	fills, err := classColors(opts.Classes, n)
	if err != nil {
		return nil, err
	}
	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i].X, xys[i].Y = xs.Values[i], ys.Values[i]
	}
	pts, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	pts.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: fills[i], Radius: pointRadius, Shape: draw.CircleGlyph{}}
	}
	edges := &plotter.Scatter{
		XYs:        pts.XYs,
		GlyphStyle: draw.GlyphStyle{Color: color.Black, Radius: pointRadius, Shape: draw.RingGlyph{}},
	}
	p.Add(pts, edges)

	axes := newCrossAxes(xs.Name, ys.Name)

	if opts.XLim != nil {
		p.X.Min, p.X.Max = opts.XLim.Min, opts.XLim.Max
	}
	if opts.YLim != nil {
		p.Y.Min, p.Y.Max = opts.YLim.Min, opts.YLim.Max
	}

	var corr *annotation
	if !opts.NoCorr {
		at := opts.At
		if at == nil {
			if opts.XLim == nil || opts.YLim == nil {
				return nil, fmt.Errorf("%w: correlation annotation needs xlim and ylim when no point is given", ErrMissingRange)
			}
			at = &Point{opts.XLim.Max - 1, opts.YLim.Max - 1}
		}
		r, _, err := Pearson(xs.Values, ys.Values)
		if err != nil {
			return nil, err
		}
		corr = newAnnotation(*at, CorrLabel(r))
	}

	if opts.AlignAxisZero {
		if opts.XLim == nil || opts.YLim == nil {
			return nil, fmt.Errorf("%w: aligning labels needs xlim and ylim", ErrMissingRange)
		}
		xl, yl := LabelCoords(*opts.XLim, *opts.YLim)
		axes.xlabelAt, axes.ylabelAt = &xl, &yl
	}

	if opts.Model != nil {
		arrows, err := projectionArrows(opts.Model)
		if err != nil {
			return nil, err
		}
		for _, a := range arrows {
			p.Add(a)
		}
		// Arrows widen the autoscaled view, but never an
		// explicit one.
		if opts.XLim != nil {
			p.X.Min, p.X.Max = opts.XLim.Min, opts.XLim.Max
		}
		if opts.YLim != nil {
			p.Y.Min, p.Y.Max = opts.YLim.Min, opts.YLim.Max
		}
	}

	for _, ax := range []struct {
		name     string
		min, max float64
	}{{"x", p.X.Min, p.X.Max}, {"y", p.Y.Min, p.Y.Max}} {
		if span := ax.max - ax.min; math.IsInf(span, 0) || math.IsNaN(span) {
			return nil, fmt.Errorf("%w: %s view [%g, %g] is too wide to draw", ErrInvalidRange, ax.name, ax.min, ax.max)
		}
	}

	p.Add(axes)
	if corr != nil {
		p.Add(corr)
	}

	f := &Figure{plot: p, title: opts.Title, corr: corr}
	f.titleStyle = p.Title.TextStyle
	f.titleStyle.Font = plotfont.From(plot.DefaultFont, vg.Points(15))
	f.titleStyle.Font.Weight = font.WeightBold
	f.titleStyle.XAlign = draw.XCenter
	f.titleStyle.YAlign = draw.YTop
	return f, nil
}

// Size returns the size of the figure.
func (f *Figure) Size() (w, h vg.Length) {
	return figWidth, figHeight
}

// Draw draws the figure to c, scaled to fill it. Draw does not paint
// a background.
func (f *Figure) Draw(c draw.Canvas) {
	if f.title != "" {
		c.FillText(f.titleStyle, vg.Point{X: c.X(0.5), Y: c.Y(titleTop)}, f.title)
	}
	w, h := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y
	axes := draw.Crop(c, w*axesLeft, -w*(1-axesRight), h*axesBottom, -h*(1-axesTop))
	f.plot.Draw(axes)
}

// WritePNG writes the figure to w as a PNG image at the given
// resolution over background bg.
func (f *Figure) WritePNG(w io.Writer, dpi int, bg color.Color) error {
	fw, fh := f.Size()
	c := vgimg.NewWith(vgimg.UseWH(fw, fh), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(bg))
	f.Draw(draw.New(c))
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// Save writes the figure to path as a transparent PNG at SaveDPI. The
// directory containing path must exist.
func (f *Figure) Save(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("saving plot: %w", cerr)
		}
	}()
	if err := f.WritePNG(out, SaveDPI, color.Transparent); err != nil {
		return fmt.Errorf("saving plot %s: %w", path, err)
	}
	return nil
}
