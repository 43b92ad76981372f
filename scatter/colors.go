// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"fmt"
	"image/color"
	"reflect"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/stats"
)

// classColors returns the fill color of each of n points.
//
// With no classes, every point gets pointColor. Numeric classes are
// mapped linearly from [min, max] onto the viridis palette. String
// classes are first replaced by the rank of their level in sorted
// order.
func classColors(classes interface{}, n int) ([]color.Color, error) {
	cols := make([]color.Color, n)
	if classes == nil {
		for i := range cols {
			cols[i] = pointColor
		}
		return cols, nil
	}

	levels, err := classLevels(classes)
	if err != nil {
		return nil, err
	}
	if len(levels) != n {
		return nil, fmt.Errorf("%w: %d classes for %d samples", ErrLengthMismatch, len(levels), n)
	}

	lo, hi := stats.Bounds(levels)
	for i, v := range levels {
		x := 0.0
		if hi > lo {
			x = (v - lo) / (hi - lo)
		}
		cols[i] = palette.Viridis.Map(x)
	}
	return cols, nil
}

// classLevels converts a slice of class labels to numbers.
func classLevels(classes interface{}) ([]float64, error) {
	rv := reflect.ValueOf(classes)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("classes must be a slice; got %T", classes)
	}

	switch k := rv.Type().Elem().Kind(); {
	case k == reflect.String:
		labels := make([]string, rv.Len())
		for i := range labels {
			labels[i] = rv.Index(i).String()
		}
		return rankLevels(labels), nil

	case k >= reflect.Int && k <= reflect.Float64:
		var levels []float64
		slice.Convert(&levels, classes)
		return levels, nil
	}
	return nil, fmt.Errorf("classes must be numbers or strings; got %T", classes)
}

// rankLevels replaces each label with the index of its level among
// the sorted distinct labels.
func rankLevels(labels []string) []float64 {
	seen := make(map[string]bool)
	var uniq []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			uniq = append(uniq, l)
		}
	}
	sort.Strings(uniq)
	rank := make(map[string]float64, len(uniq))
	for i, l := range uniq {
		rank[l] = float64(i)
	}

	out := make([]float64, len(labels))
	for i, l := range labels {
		out[i] = rank[l]
	}
	return out
}
