// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Pearson returns the Pearson correlation coefficient r of xs and ys
// and the two-sided p-value for the hypothesis that they are
// uncorrelated.
//
// If either sample is constant, r and p are NaN. With exactly two
// samples, r is ±1 and p is 1.
func Pearson(xs, ys []float64) (r, p float64, err error) {
	n := len(xs)
	if n != len(ys) {
		return 0, 0, fmt.Errorf("%w: %d xs, %d ys", ErrLengthMismatch, n, len(ys))
	}
	if n < 2 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}

	mx, my := stats.Mean(xs), stats.Mean(ys)
	var cov float64
	for i := range xs {
		cov += (xs[i] - mx) * (ys[i] - my)
	}
	cov /= float64(n - 1)
	r = cov / (stats.StdDev(xs) * stats.StdDev(ys))

	// Rounding can push |r| slightly past 1.
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}

	switch {
	case math.IsNaN(r):
		p = math.NaN()
	case n == 2:
		p = 1
	case math.Abs(r) == 1:
		p = 0
	default:
		// Under the null hypothesis, t has a Student's t
		// distribution with n-2 degrees of freedom.
		df := float64(n - 2)
		t := r * math.Sqrt(df/(1-r*r))
		p = 2 * (1 - stats.TDist{V: df}.CDF(math.Abs(t)))
	}
	return r, p, nil
}

// CorrPercent returns r as a percentage rounded to the nearest
// integer, with ties rounded to even.
func CorrPercent(r float64) float64 {
	pct := math.RoundToEven(r * 100)
	if pct == 0 {
		// Drop the sign of -0.
		pct = 0
	}
	return pct
}

// CorrLabel returns the annotation text for correlation r.
func CorrLabel(r float64) string {
	return fmt.Sprintf("Pearson r = %.0f%%", CorrPercent(r))
}
