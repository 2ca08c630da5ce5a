// Package output prints status lines for the CLI. Rendering of search
// results lives in internal/ui; this covers everything else.
package output

import (
	"fmt"
	"io"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
)

// Line prefixes. A blank icon keeps the message aligned with iconed lines.
const (
	iconSuccess = "✅"
	iconWarning = "⚠️ "
	iconError   = "❌"
)

// Writer emits status lines to a single destination. Write errors are
// ignored; there is nowhere useful to report a failed console write.
type Writer struct {
	out io.Writer
}

func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Status prints one line with the given icon, or indented when icon is empty.
func (w *Writer) Status(icon, msg string) {
	if icon == "" {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
		return
	}
	_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
}

func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

func (w *Writer) Success(msg string) { w.Status(iconSuccess, msg) }
func (w *Writer) Warning(msg string) { w.Status(iconWarning, msg) }
func (w *Writer) Error(msg string)   { w.Status(iconError, msg) }

func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// DSError prints a structured error, including its suggestion when present.
func (w *Writer) DSError(err error) {
	w.Error(dserrors.FormatForCLI(err))
}

// List prints items as an indented bullet list.
func (w *Writer) List(items []string) {
	for _, item := range items {
		_, _ = fmt.Fprintf(w.out, "  • %s\n", item)
	}
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}
