// Package service provides the probing logic of the tool version reporter.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
)

// ErrToolNotFound indicates that a probed executable could not be located or started
// because it does not exist.
var ErrToolNotFound = errors.New("tool not found")

// ErrToolUnavailable indicates that a probed executable exists but could not be
// started (e.g. permission denied, exec format error).
var ErrToolUnavailable = errors.New("tool unavailable")

// CommandRunner runs an external command and returns its captured standard output.
//
// Implementations must return an error wrapping ErrToolNotFound when the executable
// is absent, ErrToolUnavailable when it cannot be started, and must not treat a
// non-zero exit status as an error.
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is a CommandRunner backed by os/exec.
// The child inherits the environment; its stderr goes to Stderr.
type ExecRunner struct {
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner that passes tool stderr through to os.Stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stderr: os.Stderr}
}

// Output runs name with args, blocks until it exits and returns everything it wrote
// to stdout.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = r.Stderr

	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The tool ran; whatever it printed is its answer.
		return out, nil
	}

	if isNotFound(err) {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	return nil, fmt.Errorf("%w: failed to run %s: %w", ErrToolUnavailable, name, err)
}

// isNotFound reports whether err means the executable does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, exec.ErrDot) ||
		errors.Is(err, fs.ErrNotExist)
}
