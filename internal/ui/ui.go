// Package ui provides terminal styling and terminal detection for the wizard.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// StylesFor picks styles for output written to w. Color is used only when
// w is a terminal and neither forceNoColor nor NO_COLOR is set.
func StylesFor(w io.Writer, forceNoColor bool) Styles {
	return GetStyles(forceNoColor || DetectNoColor() || !IsTTY(w))
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	// Check if it's a file that's a terminal
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
