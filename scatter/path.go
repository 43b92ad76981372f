// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import "path/filepath"

// NormAbsPath joins basedir and filename and returns the shortest
// equivalent path, with "." and ".." elements and repeated separators
// removed. An absolute filename replaces basedir. It does not consult
// the file system.
func NormAbsPath(basedir, filename string) string {
	if filepath.IsAbs(filename) {
		return filepath.Clean(filename)
	}
	return filepath.Clean(filepath.Join(basedir, filename))
}
