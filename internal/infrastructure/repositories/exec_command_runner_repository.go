package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ExecCommandRunnerRepository runs processes with os/exec, wired to the terminal.
type ExecCommandRunnerRepository struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecCommandRunnerRepository creates a runner attached to the standard streams.
func NewExecCommandRunnerRepository() *ExecCommandRunnerRepository {
	return &ExecCommandRunnerRepository{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// Run executes name with args in dir and waits for it to finish.
func (it *ExecCommandRunnerRepository) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = it.stdin
	cmd.Stdout = it.stdout
	cmd.Stderr = it.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with code %d", name, exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run %s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}
