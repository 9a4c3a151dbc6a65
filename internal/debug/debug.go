// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package debug prints values for inspection, tagged with the source
// location of the call site.
package debug

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
)

// Dump writes v to w prefixed with the file and line of the caller, e.g.
//
//	[lookup.go:42] {"status": "ok"}
//
// The location points at the Dump call, not at this package, so the output
// tells the reader where in the program the value was inspected.
func Dump(w io.Writer, v any) {
	file := "?"
	line := 0
	if _, f, l, ok := runtime.Caller(1); ok {
		file = filepath.Base(f)
		line = l
	}
	fmt.Fprintf(w, "[%s:%d] %v\n", file, line, v)
}
