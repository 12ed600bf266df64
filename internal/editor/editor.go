// Package editor launches the user's text editor on a local file.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/trly/deployctl/internal/config"
	"github.com/trly/deployctl/internal/execx"
	"github.com/trly/deployctl/internal/log"
)

// Launcher opens files in an external editor and waits for it to exit.
type Launcher struct {
	configProvider config.Provider
	runner         execx.Runner
	logger         log.Logger
	getenv         func(string) string
}

// NewLauncher creates a Launcher that resolves the editor from config and the environment.
func NewLauncher(configProvider config.Provider, runner execx.Runner, logger log.Logger) *Launcher {
	return &Launcher{
		configProvider: configProvider,
		runner:         runner,
		logger:         logger,
		getenv:         os.Getenv,
	}
}

// WithGetenv replaces the environment lookup used to find VISUAL and EDITOR.
func (l *Launcher) WithGetenv(getenv func(string) string) *Launcher {
	l.getenv = getenv
	return l
}

// DefaultEditor returns the editor used when nothing is configured.
func DefaultEditor() string {
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

// Command returns the editor command line in order of precedence:
// config, $VISUAL, $EDITOR, then DefaultEditor.
func (l *Launcher) Command() string {
	candidates := []string{
		l.configProvider.GetConfig().Editor,
		l.getenv("VISUAL"),
		l.getenv("EDITOR"),
	}
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return DefaultEditor()
}

// OpenFile opens path in the editor and blocks until the editor exits.
// The editor's exit status is not inspected: a non-zero exit still counts as
// a finished session. Only a failure to start the editor is returned.
func (l *Launcher) OpenFile(ctx context.Context, path string) error {
	command := l.Command()
	parts, err := shellwords.Parse(command)
	if err != nil {
		return fmt.Errorf("invalid editor command %q: %w", command, err)
	}
	if len(parts) == 0 {
		return fmt.Errorf("invalid editor command %q", command)
	}

	l.logger.Debug("Launching editor", "editor", parts[0], "path", path)

	err = l.runner.Run(ctx, parts[0], append(parts[1:], path)...)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		l.logger.Debug("Editor exited with non-zero status", "editor", parts[0], "code", exitErr.ExitCode())
		return nil
	}
	return fmt.Errorf("running editor %q: %w", command, err)
}
