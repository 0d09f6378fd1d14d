// Package output provides consistent CLI output formatting with styles.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/Aman-CERP/indexwiz/internal/ui"
)

// Writer provides formatted output for CLI.
type Writer struct {
	out    io.Writer
	styles ui.Styles
}

// New creates a new output Writer.
func New(out io.Writer, styles ui.Styles) *Writer {
	return &Writer{
		out:    out,
		styles: styles,
	}
}

// Styles returns the styles the writer renders with.
func (w *Writer) Styles() ui.Styles {
	return w.styles
}

// Status prints a status message with an icon.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

// Success prints a success message with checkmark.
func (w *Writer) Success(msg string) {
	w.Status("✅", w.styles.Success.Render(msg))
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status("⚠️ ", w.styles.Warning.Render(msg))
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	w.Status("❌", w.styles.Error.Render(msg))
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Banner prints each line in the banner style, preceded by an empty line.
func (w *Writer) Banner(lines ...string) {
	w.Newline()
	for _, line := range lines {
		_, _ = fmt.Fprintf(w.out, "%s \n", w.styles.Banner.Render(line))
	}
}

// Code prints a block of text in the schema style, surrounded by empty lines.
func (w *Writer) Code(content string) {
	w.Newline()
	for _, line := range strings.Split(content, "\n") {
		_, _ = fmt.Fprintln(w.out, w.styles.Schema.Render(line))
	}
	w.Newline()
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

// Newlines prints n empty lines.
func (w *Writer) Newlines(n int) {
	_, _ = fmt.Fprint(w.out, strings.Repeat("\n", n))
}
