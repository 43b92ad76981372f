// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gioview shows scatter figures in a native window.
//
// Gio needs cgo and a windowing system, so the implementation is only
// built with the "gio" build tag.
package gioview
