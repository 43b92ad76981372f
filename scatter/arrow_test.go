// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"math"
	"testing"
)

func closePoints(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i].X-b[i].X) > 1e-12 || math.Abs(a[i].Y-b[i].Y) > 1e-12 {
			return false
		}
	}
	return true
}

func TestArrowOutline(t *testing.T) {
	for _, test := range []struct {
		tail, delta Point
		want        []Point
	}{
		{Point{0, 0}, Point{1, 0}, []Point{
			{0, -0.05}, {1, -0.05}, {1, -0.15}, {1.45, 0}, {1, 0.15}, {1, 0.05}, {0, 0.05},
		}},
		{Point{1, 2}, Point{0, 2}, []Point{
			{1.05, 2}, {1.05, 4}, {1.15, 4}, {1, 4.45}, {0.85, 4}, {0.95, 4}, {0.95, 2},
		}},
		{Point{3, 3}, Point{0, 0}, nil},
	} {
		a := &arrow{tail: test.tail, delta: test.delta, width: arrowWidth}
		if got := a.outline(); !closePoints(got, test.want) {
			t.Errorf("arrow from %v along %v: outline %v; want %v", test.tail, test.delta, got, test.want)
		}
	}
}

func TestArrowDataRange(t *testing.T) {
	a := &arrow{tail: Point{1, 1}, delta: Point{2, 0}, width: arrowWidth}
	xmin, xmax, ymin, ymax := a.DataRange()
	if xmin != 1 || math.Abs(xmax-3.45) > 1e-12 || math.Abs(ymin-0.85) > 1e-12 || math.Abs(ymax-1.15) > 1e-12 {
		t.Errorf("DataRange = %v, %v, %v, %v; want 1, 3.45, 0.85, 1.15", xmin, xmax, ymin, ymax)
	}
}

func TestProjectionArrows(t *testing.T) {
	m := model{
		mean:  []float64{1, 2, 99},
		comps: [][]float64{{0.6, 0.8, 0}, {-0.8, 0.6, 0}, {0, 0, 1}},
	}
	arrows, err := projectionArrows(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(arrows) != 2 {
		t.Fatalf("got %d arrows; want 2", len(arrows))
	}
	for i, want := range []Point{{0.6, 0.8}, {-0.8, 0.6}} {
		a := arrows[i]
		if a.tail != (Point{1, 2}) || a.delta != want {
			t.Errorf("arrow %d from %v along %v; want from {1 2} along %v", i, a.tail, a.delta, want)
		}
		if a.width != arrowWidth || !sameColor(a.color, arrowColor) {
			t.Errorf("arrow %d has width %v color %v; want %v %v", i, a.width, a.color, arrowWidth, arrowColor)
		}
	}
}
