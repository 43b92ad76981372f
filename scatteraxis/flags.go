// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// floatPair is a flag.Value and YAML value holding two numbers. On
// the command line it is written "a,b". In YAML it may also be a
// two-element sequence.
type floatPair struct {
	a, b float64
	set  bool
}

func (p *floatPair) String() string {
	if p == nil || !p.set {
		return ""
	}
	return strconv.FormatFloat(p.a, 'g', -1, 64) + "," + strconv.FormatFloat(p.b, 'g', -1, 64)
}

func (p *floatPair) Set(s string) error {
	fs := strings.Split(s, ",")
	if len(fs) != 2 {
		return fmt.Errorf("want two comma-separated numbers, got %q", s)
	}
	var v [2]float64
	for i, f := range fs {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return err
		}
		v[i] = x
	}
	p.a, p.b, p.set = v[0], v[1], true
	return nil
}

func (p *floatPair) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		var v []float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		if len(v) != 2 {
			return fmt.Errorf("line %d: want two numbers, got %d", n.Line, len(v))
		}
		p.a, p.b, p.set = v[0], v[1], true
		return nil
	}
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	if err := p.Set(s); err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	return nil
}
