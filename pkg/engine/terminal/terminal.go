// Package terminal reports properties of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the width cannot be determined
const DefaultWidth = 80

// IsInteractive returns true if f is attached to a terminal
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// WidthOf returns the width of the terminal behind f.
// Falls back to DefaultWidth if f is not a terminal or the size cannot be read.
func WidthOf(f *os.File) int {
	if !IsInteractive(f) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// GetWidth returns the current width of stdout's terminal
func GetWidth() int {
	return WidthOf(os.Stdout)
}
