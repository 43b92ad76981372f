// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"image/color"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// maxTicks is the most major ticks placed on one axis.
const maxTicks = 11

// crossAxes draws a left spine through x=0 and a bottom spine through
// y=0, with outward ticks and labels. If 0 is outside an axis' range,
// the other axis' spine sits at the nearest edge instead.
type crossAxes struct {
	xlabel, ylabel string

	// xlabelAt and ylabelAt are the centers of the axis labels in
	// axes-fraction coordinates. If nil, the x label is centered
	// below the axes and the y label is left of the axes.
	xlabelAt, ylabelAt *Point

	line      draw.LineStyle
	tickLen   vg.Length
	ticker    plot.Ticker
	xTick     text.Style
	yTick     text.Style
	labelText text.Style
}

func newCrossAxes(xlabel, ylabel string) *crossAxes {
	sty := func(size vg.Length, xa text.XAlignment, ya text.YAlignment) text.Style {
		return text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, size),
			XAlign:  xa,
			YAlign:  ya,
			Handler: plot.DefaultTextHandler,
		}
	}
	return &crossAxes{
		xlabel:    xlabel,
		ylabel:    ylabel,
		line:      draw.LineStyle{Color: color.Black, Width: vg.Points(0.8)},
		tickLen:   vg.Points(3.5),
		ticker:    linearTicks{max: maxTicks},
		xTick:     sty(10, draw.XCenter, draw.YTop),
		yTick:     sty(10, draw.XRight, draw.YCenter),
		labelText: sty(10, draw.XCenter, draw.YCenter),
	}
}

// Plot implements plot.Plotter.
func (a *crossAxes) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	x0 := clampLength(trX(0), c.Min.X, c.Max.X)
	y0 := clampLength(trY(0), c.Min.Y, c.Max.Y)
	pad := vg.Points(3.5)

	c.StrokeLine2(a.line, x0, c.Min.Y, x0, c.Max.Y)
	c.StrokeLine2(a.line, c.Min.X, y0, c.Max.X, y0)

	for _, t := range a.ticker.Ticks(p.X.Min, p.X.Max) {
		x := trX(t.Value)
		c.StrokeLine2(a.line, x, y0, x, y0-a.tickLen)
		c.FillText(a.xTick, vg.Point{X: x, Y: y0 - a.tickLen - pad}, t.Label)
	}
	for _, t := range a.ticker.Ticks(p.Y.Min, p.Y.Max) {
		y := trY(t.Value)
		c.StrokeLine2(a.line, x0, y, x0-a.tickLen, y)
		c.FillText(a.yTick, vg.Point{X: x0 - a.tickLen - pad, Y: y}, t.Label)
	}

	if a.xlabel != "" {
		sty := a.labelText
		pt := vg.Point{X: c.X(0.5), Y: c.Min.Y - pad}
		if a.xlabelAt != nil {
			pt = vg.Point{X: c.X(a.xlabelAt.X), Y: c.Y(a.xlabelAt.Y)}
		} else {
			sty.YAlign = draw.YTop
		}
		c.FillText(sty, pt, a.xlabel)
	}
	if a.ylabel != "" {
		sty := a.labelText
		pt := vg.Point{X: c.Min.X - pad, Y: c.Y(0.5)}
		if a.ylabelAt != nil {
			pt = vg.Point{X: c.X(a.ylabelAt.X), Y: c.Y(a.ylabelAt.Y)}
		} else {
			sty.XAlign = draw.XRight
		}
		c.FillText(sty, pt, a.ylabel)
	}
}

func clampLength(v, lo, hi vg.Length) vg.Length {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

// LabelCoords returns the axes-fraction centers of the x and y axis
// labels that line them up with the origin.
//
// The x label sits just right of the axes at height xc, where xc is
// the fraction of xlim below zero. The y label sits just above the
// axes at horizontal position yc, the fraction of ylim below zero.
// Either fraction is 0.5 if its range does not span zero.
func LabelCoords(xlim, ylim Range) (xlabel, ylabel Point) {
	xc, yc := 0.5, 0.5
	if xlim.Min <= 0 && xlim.Max >= 0 {
		xc = (0 - xlim.Min) / (xlim.Max - xlim.Min)
	}
	if ylim.Min <= 0 && ylim.Max >= 0 {
		yc = (0 - ylim.Min) / (ylim.Max - ylim.Min)
	}
	return Point{1.07, xc}, Point{yc, 1.04}
}

// linearTicks is a plot.Ticker that places "nice" major ticks using
// a linear scale.
type linearTicks struct {
	max int
}

func (lt linearTicks) Ticks(min, max float64) []plot.Tick {
	if span := max - min; math.IsInf(span, 0) || math.IsNaN(span) {
		return nil
	}
	major, _ := scale.Linear{Min: min, Max: max}.Ticks(scale.TickOptions{Max: lt.max})
	labels := tickLabels(major)
	ticks := make([]plot.Tick, len(major))
	for i, v := range major {
		ticks[i] = plot.Tick{Value: v, Label: labels[i]}
	}
	return ticks
}

// tickLabels formats evenly spaced tick values with just enough
// decimal places to tell them apart.
func tickLabels(vs []float64) []string {
	prec := 0
	if len(vs) > 1 {
		if step := math.Abs(vs[1] - vs[0]); step > 0 {
			prec = int(math.Max(0, -math.Floor(math.Log10(step)+1e-9)))
		}
	}
	labels := make([]string, len(vs))
	for i, v := range vs {
		s := strconv.FormatFloat(v, 'f', prec, 64)
		if math.Abs(v) < math.Pow(10, -float64(prec))/2 {
			s = strconv.FormatFloat(0, 'f', prec, 64)
		}
		labels[i] = s
	}
	return labels
}

// annotation draws text with its lower-left corner at a data point.
// Nothing is drawn if the point is outside the view.
type annotation struct {
	at    Point
	text  string
	style text.Style
}

func newAnnotation(at Point, txt string) *annotation {
	return &annotation{
		at:   at,
		text: txt,
		style: text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, 10),
			XAlign:  draw.XLeft,
			YAlign:  draw.YBottom,
			Handler: plot.DefaultTextHandler,
		},
	}
}

// Plot implements plot.Plotter.
func (a *annotation) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	pt := vg.Point{X: trX(a.at.X), Y: trY(a.at.Y)}
	if !c.Contains(pt) {
		return
	}
	c.FillText(a.style, pt, a.text)
}
