// Package report renders tool version reports.
// It defines the Writer interface; the text subpackage provides the
// plain-text implementation printed to standard output.
package report

import (
	"io"

	"toolversions/internal/model"
)

// Writer renders a report to an output stream.
type Writer interface {
	// Write renders the report to w.
	Write(w io.Writer, r *model.Report) error

	// Format returns the format identifier for this writer.
	Format() string
}
