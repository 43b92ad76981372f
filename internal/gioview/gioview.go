// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gio

package gioview

import (
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vggio"

	"github.com/aclements/go-scatter/scatter"
)

// Viewer is a scatter.Viewer that draws the figure in a window. Show
// returns when the window is closed or the user presses Escape,
// Ctrl-Q, or Alt-Q.
//
// Gio's event loop must be driven by app.Main on the main goroutine,
// so Show may only be called from a function run by Main.
type Viewer struct {
	// Title is the window title. If empty, the figure is titled
	// "Figure".
	Title string

	// DPI is the window resolution. If zero, 96 is used.
	DPI int
}

// Show implements scatter.Viewer.
func (v Viewer) Show(f *scatter.Figure) error {
	title := v.Title
	if title == "" {
		title = "Figure"
	}
	dpi := v.DPI
	if dpi <= 0 {
		dpi = 96
	}
	w, h := f.Size()
	win := app.NewWindow(
		app.Title(title),
		app.Size(unit.Dp(float32(w.Dots(float64(dpi)))), unit.Dp(float32(h.Dots(float64(dpi))))),
	)

	for e := range win.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			var ops op.Ops
			gtx := layout.NewContext(&ops, e)

			area := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
			key.InputOp{Tag: win, Keys: key.NameEscape + "|Ctrl-Q|Alt-Q"}.Add(gtx.Ops)
			for _, ev := range gtx.Events(win) {
				if isCloseKey(ev) {
					// Keep draining events until the window
					// is destroyed.
					win.Perform(system.ActionClose)
				}
			}
			area.Pop()

			// Fit the figure to the window as it is resized.
			ww := pxLength(gtx.Constraints.Max.X, dpi)
			wh := pxLength(gtx.Constraints.Max.Y, dpi)
			cnv := vggio.New(gtx, ww, wh, vggio.UseDPI(dpi), vggio.UseBackgroundColor(color.White))
			f.Draw(draw.New(cnv))
			e.Frame(cnv.Paint())

		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

// isCloseKey reports whether ev is a press of one of the keys that
// close the window.
func isCloseKey(ev event.Event) bool {
	ke, ok := ev.(key.Event)
	if !ok || ke.State != key.Press {
		return false
	}
	switch {
	case ke.Name == key.NameEscape:
		return true
	case ke.Name == "Q" && ke.Modifiers.Contain(key.ModCtrl):
		return true
	case ke.Name == "Q" && ke.Modifiers.Contain(key.ModAlt):
		return true
	}
	return false
}

// pxLength converts a size in window pixels to the length that spans
// it at dpi. vggio draws one dot per pixel.
func pxLength(px, dpi int) vg.Length {
	return vg.Length(float64(px) / float64(dpi) * float64(vg.Inch))
}

// Main runs fn alongside Gio's event loop and exits the process when
// fn returns. It never returns. If fn fails, Main logs the error and
// exits with status 1.
func Main(fn func() error) {
	go func() {
		if err := fn(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
