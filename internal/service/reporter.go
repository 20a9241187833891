// Package service provides the probing logic of the tool version reporter.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"toolversions/internal/model"
)

// Labels of the entries that do not come from a probe.
const (
	RuntimeLabel  = "go"
	PlatformLabel = "platform"
)

// DefaultProbes returns the fixed list of tool version probes, in report order.
func DefaultProbes() []*model.Probe {
	return []*model.Probe{
		{
			Label:   "buildbot",
			Command: "buildbot",
			Args:    []string{"--version"},
		},
		{
			Label:      "darcs",
			Command:    "darcs",
			Args:       []string{"--version"},
			DetailArgs: []string{"--exact-version"},
			Spaced:     true,
		},
	}
}

// Reporter runs the runtime, tool and platform checks in a fixed order.
type Reporter struct {
	runner         CommandRunner
	probes         []*model.Probe
	runtimeVersion func() string
	platform       func() (string, error)
	logger         zerolog.Logger
}

// ReporterOption is a functional option for configuring a Reporter.
type ReporterOption func(*Reporter)

// NewReporter creates a Reporter that probes DefaultProbes through runner.
func NewReporter(runner CommandRunner, logger zerolog.Logger, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		runner:         runner,
		probes:         DefaultProbes(),
		runtimeVersion: RuntimeVersion,
		platform:       PlatformDescription,
		logger:         logger.With().Str("component", "reporter").Logger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithProbes replaces the probe list.
func WithProbes(probes []*model.Probe) ReporterOption {
	return func(r *Reporter) {
		r.probes = probes
	}
}

// WithRuntimeVersion replaces the runtime version source.
func WithRuntimeVersion(fn func() string) ReporterOption {
	return func(r *Reporter) {
		r.runtimeVersion = fn
	}
}

// WithPlatform replaces the platform description source.
func WithPlatform(fn func() (string, error)) ReporterOption {
	return func(r *Reporter) {
		r.platform = fn
	}
}

// Run executes every check sequentially and returns the report.
// The runtime entry comes first, then one entry per present tool in probe order,
// then the platform entry. Tools that are absent or cannot be started are skipped.
// Only errors outside the runner's contract, such as a canceled context, abort the run.
func (r *Reporter) Run(ctx context.Context) (*model.Report, error) {
	report := model.NewReport(time.Now())

	report.Add(model.NewEntry(RuntimeLabel, r.runtimeVersion()))

	for _, p := range r.probes {
		if p == nil {
			continue
		}

		entry, err := r.probe(ctx, p)
		if errors.Is(err, ErrToolNotFound) {
			r.logger.Debug().
				Str("probe", p.Label).
				Str("command", p.Command).
				Msg("tool not found, skipping")
			report.Skip(p.Label)
			continue
		}
		if errors.Is(err, ErrToolUnavailable) {
			r.logger.Warn().
				Err(err).
				Str("probe", p.Label).
				Str("command", p.Command).
				Msg("tool could not be started, skipping")
			report.Skip(p.Label)
			continue
		}
		if err != nil {
			r.logger.Error().Err(err).Str("probe", p.Label).Msg("probe failed")
			return nil, fmt.Errorf("probe %s failed: %w", p.Label, err)
		}

		r.logger.Debug().
			Str("probe", p.Label).
			Str("version", entry.Text).
			Msg("probe completed")
		report.Add(entry)
	}

	platform, err := r.platform()
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to determine platform, omitting")
	} else {
		entry := model.NewEntry(PlatformLabel, platform)
		entry.Spaced = true
		report.Add(entry)
	}

	r.logger.Info().
		Int("entries", len(report.Entries)).
		Strs("skipped", report.Skipped).
		Msg("tool version report completed")

	return report, nil
}

// probe runs the version query of p and, if declared, its detail query.
// Both queries must find the tool for the probe to produce an entry.
func (r *Reporter) probe(ctx context.Context, p *model.Probe) (*model.Entry, error) {
	out, err := r.runner.Output(ctx, p.Command, p.Args...)
	if err != nil {
		return nil, err
	}

	entry := model.NewEntry(p.Label, string(out))
	entry.Spaced = p.Spaced

	if p.HasDetail() {
		entry.HasDetail = true
		detail, err := r.runner.Output(ctx, p.Command, p.DetailArgs...)
		if err != nil {
			return nil, err
		}
		entry.Detail = strings.TrimRight(string(detail), " \t\r\n")
	}

	return entry, nil
}
