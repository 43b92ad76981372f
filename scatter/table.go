// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// SeriesFromTable returns column col of t as a Series named col. The
// column must hold numbers.
func SeriesFromTable(t *table.Table, col string) (Series, error) {
	data := t.Column(col)
	if data == nil {
		return Series{}, fmt.Errorf("no column %q", col)
	}
	if k := reflect.TypeOf(data).Elem().Kind(); k < reflect.Int || k > reflect.Float64 {
		return Series{}, fmt.Errorf("column %q is not numeric", col)
	}
	var vals []float64
	slice.Convert(&vals, data)
	return Series{Name: col, Values: vals}, nil
}

// ClassesFromTable returns column col of t for use as
// Options.Classes.
func ClassesFromTable(t *table.Table, col string) (interface{}, error) {
	data := t.Column(col)
	if data == nil {
		return nil, fmt.Errorf("no column %q", col)
	}
	if _, err := classLevels(data); err != nil {
		return nil, fmt.Errorf("column %q: %w", col, err)
	}
	return data, nil
}
