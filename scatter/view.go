// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// A Viewer shows a figure to the user. Show blocks until the user
// dismisses it.
type Viewer interface {
	Show(f *Figure) error
}

// DefaultViewer is the Viewer used when Options.Viewer is nil.
var DefaultViewer Viewer = CommandViewer{Command: "display"}

// screenDPI is the resolution figures are rendered at for viewing.
const screenDPI = 100

// CommandViewer shows a figure by writing it to a temporary PNG file
// and running an external image viewer on it.
type CommandViewer struct {
	// Command is the viewer command line, split with shell quoting
	// rules. The image path is appended as its last argument. The
	// command should not exit until its window is closed.
	Command string

	// DPI is the resolution of the image. If zero, a typical
	// screen resolution is used.
	DPI int
}

// Show implements Viewer.
func (v CommandViewer) Show(f *Figure) error {
	args, err := shellquote.Split(v.Command)
	if err != nil {
		return fmt.Errorf("parsing viewer command %q: %w", v.Command, err)
	}
	if len(args) == 0 {
		return errors.New("empty viewer command")
	}

	tmp, err := os.CreateTemp("", "scatter-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	dpi := v.DPI
	if dpi <= 0 {
		dpi = screenDPI
	}
	if err := f.WritePNG(tmp, dpi, color.White); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	cmd := exec.Command(args[0], append(args[1:], tmp.Name())...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
