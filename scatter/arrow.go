// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// arrow is a filled arrow drawn in data coordinates from tail along
// delta. The head is added past the end of delta.
type arrow struct {
	tail, delta Point
	width       float64
	color       color.Color
}

// projectionArrows returns arrows from m's mean along its first two
// components.
func projectionArrows(m Projection) ([]*arrow, error) {
	mean, comps := m.Mean(), m.Components()
	if len(mean) < 2 {
		return nil, fmt.Errorf("%w: mean has %d coordinates", ErrMissingComponents, len(mean))
	}
	if len(comps) < 2 {
		return nil, fmt.Errorf("%w: got %d components", ErrMissingComponents, len(comps))
	}
	arrows := make([]*arrow, 2)
	for i, comp := range comps[:2] {
		if len(comp) < 2 {
			return nil, fmt.Errorf("%w: component %d has %d coordinates", ErrMissingComponents, i, len(comp))
		}
		arrows[i] = &arrow{
			tail:  Point{mean[0], mean[1]},
			delta: Point{comp[0], comp[1]},
			width: arrowWidth,
			color: arrowColor,
		}
	}
	return arrows, nil
}

// outline returns the arrow's polygon, starting at the lower tail
// corner and running counterclockwise. The head is 3 times as wide as
// the shaft and 1.5 times as long as it is wide. A zero-length arrow
// has no outline.
func (a *arrow) outline() []Point {
	l := math.Hypot(a.delta.X, a.delta.Y)
	if l == 0 {
		return nil
	}
	headW := 3 * a.width
	headL := 1.5 * headW
	total := l + headL

	ux, uy := a.delta.X/l, a.delta.Y/l
	at := func(along, across float64) Point {
		return Point{
			X: a.tail.X + along*ux - across*uy,
			Y: a.tail.Y + along*uy + across*ux,
		}
	}
	neck := total - headL
	return []Point{
		at(0, -a.width/2),
		at(neck, -a.width/2),
		at(neck, -headW/2),
		at(total, 0),
		at(neck, headW/2),
		at(neck, a.width/2),
		at(0, a.width/2),
	}
}

// Plot implements plot.Plotter.
func (a *arrow) Plot(c draw.Canvas, p *plot.Plot) {
	outline := a.outline()
	if outline == nil {
		return
	}
	trX, trY := p.Transforms(&c)
	pts := make([]vg.Point, len(outline))
	for i, pt := range outline {
		pts[i] = vg.Point{X: trX(pt.X), Y: trY(pt.Y)}
	}
	c.FillPolygon(a.color, c.ClipPolygonXY(pts))
}

// DataRange implements plot.DataRanger.
func (a *arrow) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = a.tail.X, a.tail.Y
	xmax, ymax = xmin, ymin
	for _, pt := range a.outline() {
		xmin, xmax = math.Min(xmin, pt.X), math.Max(xmax, pt.X)
		ymin, ymax = math.Min(ymin, pt.Y), math.Max(ymax, pt.Y)
	}
	return
}
