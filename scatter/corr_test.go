// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestPearson(t *testing.T) {
	for _, test := range []struct {
		xs, ys []float64
	}{
		{[]float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5}},
		{[]float64{1, 2, 3}, []float64{3, 2, 1}},
		{[]float64{-1.5, 0, 2.25, 8, 3}, []float64{10, 9, -1, 4, 0.5}},
		{[]float64{0, 1}, []float64{5, 7}},
	} {
		r, _, err := Pearson(test.xs, test.ys)
		if err != nil {
			t.Errorf("Pearson(%v, %v): %v", test.xs, test.ys, err)
			continue
		}
		want := stat.Correlation(test.xs, test.ys, nil)
		if math.Abs(r-want) > 1e-9 {
			t.Errorf("Pearson(%v, %v) r = %v; want %v", test.xs, test.ys, r, want)
		}
		if got, want := CorrPercent(r), math.RoundToEven(want*100); got != want {
			t.Errorf("CorrPercent(%v) = %v; want %v", r, got, want)
		}
	}
}

func TestPearsonPValue(t *testing.T) {
	for _, test := range []struct {
		xs, ys []float64
		p      float64
	}{
		{[]float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5}, 0.12402706265755459},
		{[]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}, 0},
		{[]float64{1, 2}, []float64{2, 1}, 1},
	} {
		_, p, err := Pearson(test.xs, test.ys)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(p-test.p) > 1e-6 {
			t.Errorf("Pearson(%v, %v) p = %v; want %v", test.xs, test.ys, p, test.p)
		}
	}
}

func TestPearsonConstant(t *testing.T) {
	r, p, err := Pearson([]float64{1, 1, 1}, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(r) || !math.IsNaN(p) {
		t.Errorf("constant sample: got r=%v p=%v; want NaN, NaN", r, p)
	}
	if got, want := CorrLabel(r), "Pearson r = NaN%"; got != want {
		t.Errorf("CorrLabel(NaN) = %q; want %q", got, want)
	}
}

func TestPearsonErrors(t *testing.T) {
	if _, _, err := Pearson([]float64{1, 2, 3}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("mismatched lengths: got %v; want %v", err, ErrLengthMismatch)
	}
	if _, _, err := Pearson([]float64{1}, []float64{1}); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("one sample: got %v; want %v", err, ErrTooFewSamples)
	}
}

func TestCorrLabel(t *testing.T) {
	for _, test := range []struct {
		r    float64
		want string
	}{
		{0.8734, "Pearson r = 87%"},
		{-0.5, "Pearson r = -50%"},
		{0.125, "Pearson r = 12%"},
		{0.375, "Pearson r = 38%"},
		{-0.001, "Pearson r = 0%"},
		{1, "Pearson r = 100%"},
	} {
		if got := CorrLabel(test.r); got != test.want {
			t.Errorf("CorrLabel(%v) = %q; want %q", test.r, got, test.want)
		}
	}
}
