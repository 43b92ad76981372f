// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scatteraxis plots two columns of a CSV file against each
// other on axes that cross at the origin.
//
// The first row of the input names the columns. Numeric columns can
// be plotted with -x and -y, and any column can color the points with
// -class. The plot is annotated with the Pearson correlation of the
// two columns unless -nocorr is given, and -pca adds arrows along the
// principal components of the points.
//
// Settings can also be given in a YAML file with -config, using the
// flag names as keys. Flags on the command line override the file.
//
// The plot is shown by running an image viewer (ImageMagick's display
// by default) and, with -save, written to out/plots/NAME.png. When
// built with -tags gio, -gio shows the plot in a native window
// instead.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-scatter/scatter"
)

// gioMain and gioViewer are set when the gio window viewer is built
// in.
var (
	gioMain   func(func() error)
	gioViewer func(title string) scatter.Viewer
)

func main() {
	log.SetPrefix("scatteraxis: ")
	log.SetFlags(0)

	cfg, args, err := parseArgs(os.Args[0], os.Args[1:], os.Stderr)
	switch {
	case err == flag.ErrHelp:
		os.Exit(0)
	case errors.Is(err, errUsage):
		os.Exit(2)
	case err != nil:
		log.Fatal(err)
	}
	if len(args) > 1 || cfg.X == "" || cfg.Y == "" {
		fmt.Fprintf(os.Stderr, "%s: -x and -y are required, and at most one input file may be given\n", os.Args[0])
		os.Exit(2)
	}
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	if cfg.Gio {
		if gioMain == nil {
			log.Fatal("-gio requires building with -tags gio")
		}
		gioMain(func() error { return run(cfg, path) })
		return
	}
	if err := run(cfg, path); err != nil {
		log.Fatal(err)
	}
}

// run plots the data in path, or stdin if path is "-", as described by
// cfg.
func run(cfg *config, path string) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	tab, err := readTable(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	xs, ys, opts, err := plotArgs(tab, cfg)
	if err != nil {
		return err
	}
	switch {
	case cfg.Gio:
		opts.Viewer = gioViewer(cfg.Title)
	case cfg.Viewer != "":
		opts.Viewer = scatter.CommandViewer{Command: cfg.Viewer}
	}
	return scatter.ScatterAxis(xs, ys, opts)
}

// readTable reads CSV data whose first row names the columns. Columns
// whose values all parse as numbers become numeric.
func readTable(r io.Reader) (*table.Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("no header row")
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// plotArgs extracts the columns cfg selects from tab and fits any
// model it asks for. The returned options have no Viewer.
func plotArgs(tab *table.Table, cfg *config) (xs, ys scatter.Series, opts *scatter.Options, err error) {
	if xs, err = scatter.SeriesFromTable(tab, cfg.X); err != nil {
		return
	}
	if ys, err = scatter.SeriesFromTable(tab, cfg.Y); err != nil {
		return
	}
	opts = cfg.options()
	if cfg.Class != "" {
		if opts.Classes, err = scatter.ClassesFromTable(tab, cfg.Class); err != nil {
			return
		}
	}
	if cfg.PCA {
		var m *pcaModel
		if m, err = fitPCA(xs.Values, ys.Values); err != nil {
			return
		}
		opts.Model = m
	}
	return
}
