// Package testutil provides common test utilities and helpers to reduce boilerplate in test files.
package testutil

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/trly/deployctl/internal/config"
	"github.com/trly/deployctl/internal/log"
)

// NewTestLogger creates a logger that writes to t.Logf for testing.
// This ensures test output is properly captured by the test framework.
func NewTestLogger(t testing.TB) log.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	handler := &testHandler{t: t, opts: opts}
	slogLogger := slog.New(handler)

	return log.NewSlogAdapter(slogLogger)
}

// ConfigOption allows customization of test config settings.
type ConfigOption func(*config.Settings)

// WithTempDir sets the staging directory.
func WithTempDir(dir string) ConfigOption {
	return func(cfg *config.Settings) {
		cfg.TempDir = dir
	}
}

// WithEditor sets the editor command override.
func WithEditor(editor string) ConfigOption {
	return func(cfg *config.Settings) {
		cfg.Editor = editor
	}
}

// WithVerbose sets verbose logging.
func WithVerbose(verbose bool) ConfigOption {
	return func(cfg *config.Settings) {
		cfg.Verbose = verbose
	}
}

// NewMockConfig creates a config provider for testing with optional customizations.
// The staging directory defaults to a per-test temp dir.
func NewMockConfig(t testing.TB, opts ...ConfigOption) config.Provider {
	cfg := &config.Settings{
		APIURL:  config.DefaultAPIURL,
		TempDir: t.TempDir(),
		Verbose: true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	configProvider := config.NewDefaultConfigProvider()
	configProvider.SetConfig(cfg)
	return configProvider
}

// LogEntry is a single call captured by RecordingLogger.
type LogEntry struct {
	Level string
	Msg   string
	Args  []any
}

// RecordingLogger captures log calls so tests can assert on levels, messages and order.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (r *RecordingLogger) record(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, LogEntry{Level: level, Msg: msg, Args: args})
}

// Debug records a debug message.
func (r *RecordingLogger) Debug(msg string, args ...any) { r.record("debug", msg, args) }

// Info records an info message.
func (r *RecordingLogger) Info(msg string, args ...any) { r.record("info", msg, args) }

// Success records a success message.
func (r *RecordingLogger) Success(msg string, args ...any) { r.record("success", msg, args) }

// Warn records a warning message.
func (r *RecordingLogger) Warn(msg string, args ...any) { r.record("warn", msg, args) }

// Error records an error message.
func (r *RecordingLogger) Error(msg string, args ...any) { r.record("error", msg, args) }

// Entries returns a copy of every recorded call.
func (r *RecordingLogger) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogEntry(nil), r.entries...)
}

// EntriesAt returns the recorded calls at level.
func (r *RecordingLogger) EntriesAt(level string) []LogEntry {
	var out []LogEntry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Visible returns every non-debug call in order.
func (r *RecordingLogger) Visible() []LogEntry {
	var out []LogEntry
	for _, e := range r.Entries() {
		if e.Level != "debug" {
			out = append(out, e)
		}
	}
	return out
}

var _ log.Logger = (*RecordingLogger)(nil)

// testHandler implements slog.Handler to write to testing.TB.
type testHandler struct {
	t    testing.TB
	opts *slog.HandlerOptions
}

func (h *testHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *testHandler) Handle(_ context.Context, record slog.Record) error {
	h.t.Logf("[%s] %s", record.Level.String(), record.Message)
	return nil
}

func (h *testHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return &testHandler{t: h.t, opts: h.opts}
}

func (h *testHandler) WithGroup(_ string) slog.Handler {
	return &testHandler{t: h.t, opts: h.opts}
}
