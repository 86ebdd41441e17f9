// Package ledger invokes the external ledger command-line program.
package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Runner executes ledger with the given arguments and returns its standard output.
type Runner interface {
	Run(ctx context.Context, args []string) (string, error)
}

// ExitError reports a ledger invocation that exited non-zero.
type ExitError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("the ledger command failed (exit %d): stdout: %s, stderr: %s",
		e.ExitCode, strings.TrimSpace(e.Stdout), strings.TrimSpace(e.Stderr))
}

// Command runs a ledger binary as a subprocess.
type Command struct {
	Binary string
}

// NewCommand returns a Command for binary, defaulting to "ledger" on PATH.
func NewCommand(binary string) *Command {
	if binary == "" {
		binary = "ledger"
	}
	return &Command{Binary: binary}
}

// Run executes the binary with args and captures both output streams.
func (c *Command) Run(ctx context.Context, args []string) (string, error) {
	slog.Debug("running ledger", slog.String("binary", c.Binary), slog.Any("args", args))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}
		return "", fmt.Errorf("running %s: %w", c.Binary, err)
	}
	return stdout.String(), nil
}
