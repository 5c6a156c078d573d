// Package util holds small helpers shared by the library and its tools.
package util

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether the file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
