// Package model provides data models for the tool version reporter.
package model

import "strings"

// Probe declares an external tool version probe.
type Probe struct {
	Label      string   // Label printed before the captured text (e.g., "darcs")
	Command    string   // Executable name, resolved through PATH
	Args       []string // Version-revealing arguments (e.g., "--version")
	DetailArgs []string // Optional second query whose output is printed raw on its own line
	Spaced     bool     // Whether the section is preceded by a blank line
}

// HasDetail reports whether the probe runs a second, detail query.
func (p *Probe) HasDetail() bool {
	return len(p.DetailArgs) > 0
}

// lineBreaks collapses every line ending, CRLF first, into a single space.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// CollapseLines turns captured output into a single line.
// The final line break is dropped; every other line break becomes a space.
func CollapseLines(out string) string {
	out = strings.TrimSuffix(out, "\n")
	out = strings.TrimSuffix(out, "\r")
	return lineBreaks.Replace(out)
}
