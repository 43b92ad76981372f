// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"strings"
	"testing"
)

const irisCSV = `sepal,petal,species
5.1,1.4,setosa
4.9,1.4,setosa
7.0,4.7,versicolor
6.4,4.5,versicolor
6.3,6.0,virginica
5.8,5.1,virginica
`

func TestPlotArgs(t *testing.T) {
	tab, err := readTable(strings.NewReader(irisCSV))
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config{X: "sepal", Y: "petal", Class: "species", PCA: true, Title: "Iris"}
	xs, ys, opts, err := plotArgs(tab, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if xs.Name != "sepal" || len(xs.Values) != 6 || xs.Values[2] != 7.0 {
		t.Errorf("xs = %v", xs)
	}
	if ys.Name != "petal" || len(ys.Values) != 6 || ys.Values[4] != 6.0 {
		t.Errorf("ys = %v", ys)
	}
	want := []string{"setosa", "setosa", "versicolor", "versicolor", "virginica", "virginica"}
	if !reflect.DeepEqual(opts.Classes, want) {
		t.Errorf("Classes = %v; want %v", opts.Classes, want)
	}
	if opts.Model == nil || len(opts.Model.Components()) != 2 {
		t.Errorf("Model = %v; want a two-component fit", opts.Model)
	}
	if opts.Title != "Iris" || opts.Viewer != nil {
		t.Errorf("got options %+v", opts)
	}
}

func TestPlotArgsErrors(t *testing.T) {
	tab, err := readTable(strings.NewReader(irisCSV))
	if err != nil {
		t.Fatal(err)
	}
	for _, cfg := range []*config{
		{X: "sepal", Y: "missing"},
		{X: "species", Y: "petal"},
		{X: "sepal", Y: "petal", Class: "missing"},
	} {
		if _, _, _, err := plotArgs(tab, cfg); err == nil {
			t.Errorf("plotArgs(%+v) succeeded; want error", cfg)
		}
	}
}

func TestReadTableErrors(t *testing.T) {
	for _, in := range []string{"", "a,b\n1\n"} {
		if _, err := readTable(strings.NewReader(in)); err == nil {
			t.Errorf("readTable(%q) succeeded; want error", in)
		}
	}
}
