// Package text renders tool version reports as human-readable plain text.
package text

import (
	"bufio"
	"fmt"
	"io"

	"toolversions/internal/model"
)

// Writer renders one "label: text" line per entry, preceded by a blank line for
// spaced entries and followed by the raw detail line for entries that carry one,
// even when that line is empty.
type Writer struct{}

// NewWriter creates a new plain-text Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier.
func (w *Writer) Format() string {
	return "text"
}

// Write renders r to out.
func (w *Writer) Write(out io.Writer, r *model.Report) error {
	if r == nil {
		return fmt.Errorf("report is nil")
	}

	bw := bufio.NewWriter(out)
	for _, e := range r.Entries {
		if e == nil {
			continue
		}
		if e.Spaced {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "%s: %s\n", e.Label, e.Text)
		if e.HasDetail || e.Detail != "" {
			fmt.Fprintf(bw, "%s\n", e.Detail)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
