// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scatter draws two-variable scatter plots whose axes cross
// at the origin.
//
// A plot is annotated with the Pearson correlation of its two
// variables. Points may be colored by class, and the first two
// directions of a fitted projection model (such as a PCA) may be drawn
// as arrows from the model's mean. The figure is optionally saved as a
// PNG under OutDir and is then shown with a blocking Viewer.
package scatter

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	ErrLengthMismatch    = errors.New("sample lengths differ")
	ErrTooFewSamples     = errors.New("need at least 2 samples")
	ErrMissingRange      = errors.New("axis range required")
	ErrInvalidRange      = errors.New("range minimum must be less than maximum")
	ErrMissingComponents = errors.New("model must have a mean and two components")
)

// OutDir is the directory ScatterAxis saves plots to. It is not
// created if it does not exist.
const OutDir = "out/plots"

// SaveDPI is the resolution of saved plots.
const SaveDPI = 600

// A Series is a named sequence of samples. The name labels the
// series' axis.
type Series struct {
	Name   string
	Values []float64
}

// Range is a closed interval [Min, Max] of data values.
type Range struct {
	Min, Max float64
}

func (r Range) check() error {
	if !(r.Min < r.Max) {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Point is a point in data coordinates, or in axes-fraction
// coordinates where documented.
type Point struct {
	X, Y float64
}

// A Projection is a fitted dimensionality-reduction model over the
// two plotted variables.
type Projection interface {
	// Mean returns the center of the fitted data.
	Mean() []float64

	// Components returns the principal directions in decreasing
	// order of explained variance. Only the first two are drawn.
	Components() [][]float64
}

// Options control ScatterAxis. The zero value gives a uniformly
// colored plot with a correlation annotation, which requires XLim and
// YLim because At is unset.
type Options struct {
	// Classes, if non-nil, is a slice of numbers or strings with
	// one element per sample. Points are colored by class.
	Classes interface{}

	// XLim and YLim, if non-nil, clip the view to the given
	// ranges.
	XLim, YLim *Range

	// AlignAxisZero moves each axis label next to the point where
	// the axes cross. It requires XLim and YLim.
	AlignAxisZero bool

	// If Save is set and Name is non-empty, the figure is written
	// to OutDir/Name.png before it is shown. Name is always taken
	// relative to OutDir.
	Save bool
	Name string

	// Title, if non-empty, is drawn in bold above the figure.
	Title string

	// At is the data point where the correlation annotation is
	// drawn. If nil, it is (XLim.Max-1, YLim.Max-1).
	At *Point

	// NoCorr disables the correlation annotation.
	NoCorr bool

	// Model, if non-nil, adds arrows along its first two
	// components.
	Model Projection

	// Viewer shows the finished figure. If nil, DefaultViewer is
	// used.
	Viewer Viewer
}

// ScatterAxis plots ys against xs, saves the plot if requested, and
// shows it with opts.Viewer, blocking until the viewer returns. A nil
// opts is equivalent to &Options{}.
func ScatterAxis(xs, ys Series, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	f, err := NewFigure(xs, ys, opts)
	if err != nil {
		return err
	}

	if opts.Save && opts.Name != "" {
		if err := f.Save(filepath.Join(OutDir, opts.Name+".png")); err != nil {
			return err
		}
	}

	v := opts.Viewer
	if v == nil {
		v = DefaultViewer
	}
	if err := v.Show(f); err != nil {
		return fmt.Errorf("showing plot: %w", err)
	}
	return nil
}
