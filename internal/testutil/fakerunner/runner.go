// Package fakerunner provides a fake implementation of execx.Runner for testing.
package fakerunner

import (
	"context"
	"fmt"
	"strings"
)

// Runner is a fake implementation of execx.Runner for testing.
type Runner struct {
	errors  map[string]error
	actions map[string]func(args []string)
	calls   []Call
}

// Call represents a captured command execution call.
type Call struct {
	Name string
	Args []string
}

// New creates a new fake runner.
func New() *Runner {
	return &Runner{
		errors:  make(map[string]error),
		actions: make(map[string]func([]string)),
		calls:   []Call{},
	}
}

// SetError sets the error for a specific command.
func (r *Runner) SetError(name string, args []string, err error) {
	r.errors[r.makeKey(name, args)] = err
}

// OnRun registers fn to run whenever the named program is executed,
// regardless of arguments. Tests use it to simulate an editor writing a file.
func (r *Runner) OnRun(name string, fn func(args []string)) {
	r.actions[name] = fn
}

// Run implements execx.Runner.
func (r *Runner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, Call{Name: name, Args: args})

	if fn, exists := r.actions[name]; exists {
		fn(args)
	}

	if err, exists := r.errors[r.makeKey(name, args)]; exists {
		return err
	}

	return nil
}

// GetCalls returns all captured command calls.
func (r *Runner) GetCalls() []Call {
	return r.calls
}

// Reset clears all stored errors, actions and calls.
func (r *Runner) Reset() {
	r.errors = make(map[string]error)
	r.actions = make(map[string]func([]string))
	r.calls = []Call{}
}

func (r *Runner) makeKey(name string, args []string) string {
	return fmt.Sprintf("%s %s", name, strings.Join(args, " "))
}
