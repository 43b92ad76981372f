// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-scatter/scatter"
	"gopkg.in/yaml.v3"
)

// errUsage reports a command line the flag package rejected. The flag
// package has already printed the problem and the usage message.
var errUsage = errors.New("bad usage")

// config holds everything that controls one plot. It can be read from
// a YAML file and is then overridden by command-line flags.
type config struct {
	X     string `yaml:"x"`
	Y     string `yaml:"y"`
	Class string `yaml:"class"`

	XLim  floatPair `yaml:"xlim"`
	YLim  floatPair `yaml:"ylim"`
	Align bool      `yaml:"align"`

	Save  bool   `yaml:"save"`
	Name  string `yaml:"name"`
	Title string `yaml:"title"`

	At     floatPair `yaml:"at"`
	NoCorr bool      `yaml:"nocorr"`
	PCA    bool      `yaml:"pca"`

	Viewer string `yaml:"viewer"`
	Gio    bool   `yaml:"gio"`

	// File is the YAML file c was read from. It is only set by the
	// -config flag.
	File string `yaml:"-"`
}

// flagSet returns a FlagSet that sets the fields of c, using c's
// current values as defaults.
func (c *config) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&c.X, "x", c.X, "plot column `col` on the x axis")
	fs.StringVar(&c.Y, "y", c.Y, "plot column `col` on the y axis")
	fs.StringVar(&c.Class, "class", c.Class, "color points by column `col`")
	fs.Var(&c.XLim, "xlim", "limit the x axis to `min,max`")
	fs.Var(&c.YLim, "ylim", "limit the y axis to `min,max`")
	fs.BoolVar(&c.Align, "align", c.Align, "place axis labels next to the origin (requires -xlim and -ylim)")
	fs.BoolVar(&c.Save, "save", c.Save, "save the plot to "+scatter.OutDir+"/NAME.png")
	fs.StringVar(&c.Name, "name", c.Name, "save the plot under `name`")
	fs.StringVar(&c.Title, "title", c.Title, "figure `title`")
	fs.Var(&c.At, "at", "place the correlation label at data point `x,y` (default: xlim max-1, ylim max-1)")
	fs.BoolVar(&c.NoCorr, "nocorr", c.NoCorr, "omit the correlation label")
	fs.BoolVar(&c.PCA, "pca", c.PCA, "draw the principal components of the two columns")
	fs.StringVar(&c.Viewer, "viewer", c.Viewer, "show the plot by running `command` on a PNG file (default: display)")
	fs.BoolVar(&c.Gio, "gio", c.Gio, "show the plot in a native window")
	fs.StringVar(&c.File, "config", c.File, "read default settings from YAML `file`")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [data.csv]\n\nReads CSV from stdin if no file is given.\n\n", name)
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs parses the command line args. If -config names a file,
// the file supplies the defaults and flags given in args override
// them.
func parseArgs(name string, args []string, stderr io.Writer) (*config, []string, error) {
	c := new(config)
	fs := c.flagSet(name)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, usageErr(err)
	}
	if c.File == "" {
		return c, fs.Args(), nil
	}

	path := c.File
	c, err := readConfig(path)
	if err != nil {
		return nil, nil, err
	}
	c.File = path
	fs = c.flagSet(name)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, usageErr(err)
	}
	return c, fs.Args(), nil
}

func usageErr(err error) error {
	if err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", errUsage, err)
}

// readConfig reads a YAML config file. Unknown keys are an error.
func readConfig(path string) (*config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := new(config)
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// options returns the scatter options described by c, leaving
// Classes, Model, and Viewer unset.
func (c *config) options() *scatter.Options {
	opts := &scatter.Options{
		AlignAxisZero: c.Align,
		Save:          c.Save,
		Name:          c.Name,
		Title:         c.Title,
		NoCorr:        c.NoCorr,
	}
	if c.XLim.set {
		opts.XLim = &scatter.Range{Min: c.XLim.a, Max: c.XLim.b}
	}
	if c.YLim.set {
		opts.YLim = &scatter.Range{Min: c.YLim.a, Max: c.YLim.b}
	}
	if c.At.set {
		opts.At = &scatter.Point{X: c.At.a, Y: c.At.b}
	}
	return opts
}
