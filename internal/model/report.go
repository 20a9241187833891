// Package model provides data models for the tool version reporter.
package model

import "time"

// Entry is one labeled section of the report.
type Entry struct {
	Label     string // 标签
	Text      string // 单行版本文本
	Detail    string // 详细版本（原样输出）
	HasDetail bool   // 是否输出详细版本行（即使为空）
	Spaced    bool   // 前置空行
}

// NewEntry creates an Entry, collapsing text into a single line.
func NewEntry(label, text string) *Entry {
	return &Entry{
		Label: label,
		Text:  CollapseLines(text),
	}
}

// Report holds the ordered results of one run.
type Report struct {
	Entries     []*Entry
	Skipped     []string // Labels of probes whose tool was absent
	CollectedAt time.Time
}

// NewReport creates an empty Report.
func NewReport(collectedAt time.Time) *Report {
	return &Report{
		Entries:     make([]*Entry, 0, 4),
		CollectedAt: collectedAt,
	}
}

// Add appends an entry, ignoring nil.
func (r *Report) Add(e *Entry) {
	if e == nil {
		return
	}
	r.Entries = append(r.Entries, e)
}

// Skip records a probe whose tool was not found.
func (r *Report) Skip(label string) {
	r.Skipped = append(r.Skipped, label)
}

// Labels returns entry labels in report order.
func (r *Report) Labels() []string {
	labels := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		labels = append(labels, e.Label)
	}
	return labels
}
