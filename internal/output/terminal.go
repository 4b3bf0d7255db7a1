package output

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// StylesFor picks colored styles for terminals and plain styles otherwise.
func StylesFor(f *os.File) *Styles {
	if IsTerminal(f) {
		return DefaultStyles()
	}
	return NoColorStyles()
}
