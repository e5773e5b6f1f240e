package scaffold

import (
	"fmt"
	"io"
)

// Reporter receives one progress line per scaffolded item. The output is
// informational only and not part of the correctness contract.
type Reporter interface {
	// Step reports an action ("dir", "created", "skipped") and the item's
	// path relative to the project root.
	Step(action, path string)
}

// ConsoleReporter prints progress lines to a writer.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a ConsoleReporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// Step writes one aligned progress line.
func (r *ConsoleReporter) Step(action, path string) {
	_, _ = fmt.Fprintf(r.w, "  %-8s %s\n", action, path)
}

// nopReporter discards all progress output.
type nopReporter struct{}

func (nopReporter) Step(string, string) {}
