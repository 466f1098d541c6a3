// Package ui renders tables and styled status messages for the CLI.
package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Table renders rows of data in aligned columns with a bold header.
type Table struct {
	w *tabwriter.Writer
}

// NewTable creates a table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = headerStyle.Render(h)
	}
	_, _ = fmt.Fprintln(tw, strings.Join(styled, "\t"))
	return &Table{w: tw}
}

// Row appends a row of values.
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}

// Warn prints a yellow warning line.
func Warn(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(out, warnStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Error prints a red error line.
func Error(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// OK prints a green confirmation line.
func OK(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(out, okStyle.Render(fmt.Sprintf(format, args...)))
}
