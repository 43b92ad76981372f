// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gio

package main

import (
	"github.com/aclements/go-scatter/internal/gioview"
	"github.com/aclements/go-scatter/scatter"
)

func init() {
	gioMain = gioview.Main
	gioViewer = func(title string) scatter.Viewer {
		if title == "" {
			title = "scatteraxis"
		}
		return gioview.Viewer{Title: title}
	}
}
