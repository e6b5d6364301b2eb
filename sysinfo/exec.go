package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its raw stdout. A command
// that exits non-zero returns whatever it printed together with the error.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec and waits for them to finish. There
// is no deadline of its own: a lookup takes as long as the utility it calls.
type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return out, fmt.Errorf("run %s: %w", name, err)
	}
	return out, nil
}

// output runs a command and returns what it printed. Only a command that
// could not run counts as a failure; a non-zero exit status still yields its
// stdout, which callers parse like any other output.
func (p *Prober) output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := p.Runner.Output(ctx, name, args...)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
		p.Logger.Debug("command exited non-zero", "command", name, "error", err)
	}
	return out, nil
}

// runString runs a command and returns its stdout with surrounding
// whitespace removed. Empty output is reported as an error so callers can
// move on to their next source.
func (p *Prober) runString(ctx context.Context, name string, args ...string) (string, error) {
	out, err := p.output(ctx, name, args...)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(out))
	if s == "" {
		return "", fmt.Errorf("run %s: %w", name, errEmptyOutput)
	}
	return s, nil
}

// runLines runs a command and splits its stdout into lines.
func (p *Prober) runLines(ctx context.Context, name string, args ...string) ([]string, error) {
	out, err := p.output(ctx, name, args...)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(out), "\n"), nil
}
