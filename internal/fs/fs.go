// Package fs provides local file operations for staging remote app files
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trly/deployctl/internal/config"
	"github.com/trly/deployctl/internal/log"
)

// tempFilePrefix marks staging files created by deployctl.
const tempFilePrefix = "deployctl"

// Service provides temporary file operations rooted in the configured temp directory.
type Service struct {
	configProvider config.Provider
	logger         log.Logger
}

// NewServiceWithLogger creates a new filesystem service with explicit logger injection.
func NewServiceWithLogger(configProvider config.Provider, logger log.Logger) *Service {
	return &Service{
		configProvider: configProvider,
		logger:         logger,
	}
}

// TempDir returns the directory staging files are placed in.
func (s *Service) TempDir() string {
	if dir := s.configProvider.GetConfig().TempDir; dir != "" {
		return dir
	}
	return os.TempDir()
}

// TemporaryFilePath returns the staging path for fileName of the given app.
// The same inputs always map to the same path; different app ids never share one.
func (s *Service) TemporaryFilePath(fileName, appID string) string {
	name := fmt.Sprintf("%s-%s-%s", tempFilePrefix, sanitizeSegment(appID), sanitizeSegment(fileName))
	return filepath.Join(s.TempDir(), name)
}

// ReadFile returns the full content of path.
func (s *Service) ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path) //nolint:gosec // Path is built by TemporaryFilePath
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(content), nil
}

// CleanupFile removes path. Failures are logged and never returned so they
// cannot mask an earlier error.
func (s *Service) CleanupFile(path string) {
	err := os.Remove(path)
	switch {
	case err == nil:
		s.logger.Debug("Removed temporary file", "path", path)
	case errors.Is(err, os.ErrNotExist):
		s.logger.Debug("Temporary file already absent", "path", path)
	default:
		s.logger.Warn("Failed to remove temporary file", "path", path, "error", err)
	}
}

// sanitizeSegment keeps s usable as part of a single file name. Bytes outside
// [A-Za-z0-9._] are percent-encoded, including "-" so it only ever appears as
// the separator. Encoding works on bytes so invalid UTF-8 stays distinct.
func sanitizeSegment(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '_':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
