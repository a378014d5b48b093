package ui

import (
	"io"

	"golang.org/x/term"
)

// IsTerminal reports whether w is attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled reports whether diagnostics written to w should be colored.
// NO_COLOR (https://no-color.org) turns color off regardless of the terminal.
func ColorEnabled(w io.Writer, getenv func(string) string) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(w)
}
