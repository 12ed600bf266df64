// Package execx provides a testable abstraction for command execution.
package execx

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Runner defines an interface for executing external commands.
type Runner interface {
	// Run executes a command attached to the runner's streams and waits for it to exit.
	Run(ctx context.Context, name string, args ...string) error
}

// RealRunner implements Runner using os/exec.
type RealRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRealRunner creates a RealRunner wired to the process's standard streams.
func NewRealRunner() *RealRunner {
	return &RealRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes a command interactively and blocks until it exits.
func (r *RealRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}
