package cmd

import "context"

// FileManager stages remote files on the local filesystem.
type FileManager interface {
	TemporaryFilePath(fileName, appID string) string
	ReadFile(path string) (string, error)
	// CleanupFile removes path. It never fails; errors are logged by the implementation.
	CleanupFile(path string)
}

// EditorLauncher opens a file in the user's editor and returns once the editor exits.
type EditorLauncher interface {
	OpenFile(ctx context.Context, path string) error
}
