// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/kballard/go-shellquote"
)

func TestCommandViewer(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no sh")
	}
	f, err := NewFigure(testXs, testYs, &Options{NoCorr: true})
	if err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "shown.png")
	v := CommandViewer{
		Command: "sh -c " + shellquote.Join(`cp "$0" `+shellquote.Join(dst)),
		DPI:     20,
	}
	if err := v.Show(f); err != nil {
		t.Fatal(err)
	}

	r, err := os.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	img, err := png.Decode(r)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 100 {
		t.Errorf("viewed image is %dx%d; want 120x100", b.Dx(), b.Dy())
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0xffff {
		t.Errorf("viewed image has alpha %#x in the corner; want opaque", a)
	}
}

func TestCommandViewerErrors(t *testing.T) {
	f, err := NewFigure(testXs, testYs, &Options{NoCorr: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, cmd := range []string{"", "   ", `display "unterminated`} {
		if err := (CommandViewer{Command: cmd}).Show(f); err == nil {
			t.Errorf("Show with command %q succeeded; want error", cmd)
		}
	}
	if _, err := exec.LookPath("false"); err == nil {
		if err := (CommandViewer{Command: "false"}).Show(f); err == nil {
			t.Errorf("Show with failing command succeeded; want error")
		}
	}
}
