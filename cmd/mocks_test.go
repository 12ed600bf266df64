package cmd

import (
	"context"
	"sync"
	"testing"

	"github.com/trly/deployctl/internal/api"
	"github.com/trly/deployctl/internal/config"
	"github.com/trly/deployctl/internal/log"
	"github.com/trly/deployctl/internal/testutil"
)

// callLog records collaborator calls in the order they happen.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, name)
}

func (c *callLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// MockAppService implements api.AppService for testing.
type MockAppService struct {
	DownloadFileFunc func(ctx context.Context, appID, fileType, destPath string) error
	UploadFileFunc   func(ctx context.Context, appID, fileType, content string) error
}

func (m *MockAppService) DownloadFile(ctx context.Context, appID, fileType, destPath string) error {
	if m.DownloadFileFunc != nil {
		return m.DownloadFileFunc(ctx, appID, fileType, destPath)
	}
	return nil
}

func (m *MockAppService) UploadFile(ctx context.Context, appID, fileType, content string) error {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, appID, fileType, content)
	}
	return nil
}

// MockFileManager implements FileManager for testing.
type MockFileManager struct {
	TemporaryFilePathFunc func(fileName, appID string) string
	ReadFileFunc          func(path string) (string, error)
	CleanupFileFunc       func(path string)
}

func (m *MockFileManager) TemporaryFilePath(fileName, appID string) string {
	if m.TemporaryFilePathFunc != nil {
		return m.TemporaryFilePathFunc(fileName, appID)
	}
	return "/tmp/deployctl-" + appID + "-" + fileName
}

func (m *MockFileManager) ReadFile(path string) (string, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	return "", nil
}

func (m *MockFileManager) CleanupFile(path string) {
	if m.CleanupFileFunc != nil {
		m.CleanupFileFunc(path)
	}
}

// MockEditor implements EditorLauncher for testing.
type MockEditor struct {
	OpenFileFunc func(ctx context.Context, path string) error
}

func (m *MockEditor) OpenFile(ctx context.Context, path string) error {
	if m.OpenFileFunc != nil {
		return m.OpenFileFunc(ctx, path)
	}
	return nil
}

var (
	_ api.AppService = (*MockAppService)(nil)
	_ FileManager    = (*MockFileManager)(nil)
	_ EditorLauncher = (*MockEditor)(nil)
)

// AppBuilder provides a fluent interface for building test Apps.
type AppBuilder struct {
	logger      log.Logger
	config      *config.Settings
	appService  api.AppService
	fileManager FileManager
	editor      EditorLauncher
}

// NewAppBuilder creates a new AppBuilder with sensible defaults.
func NewAppBuilder(t *testing.T) *AppBuilder {
	return &AppBuilder{
		logger:      testutil.NewTestLogger(t),
		config:      &config.Settings{APIURL: config.DefaultAPIURL, TempDir: t.TempDir()},
		appService:  &MockAppService{},
		fileManager: &MockFileManager{},
		editor:      &MockEditor{},
	}
}

func (b *AppBuilder) WithLogger(l log.Logger) *AppBuilder {
	b.logger = l
	return b
}

func (b *AppBuilder) WithConfig(c *config.Settings) *AppBuilder {
	b.config = c
	return b
}

func (b *AppBuilder) WithAppService(s api.AppService) *AppBuilder {
	b.appService = s
	return b
}

func (b *AppBuilder) WithFileManager(f FileManager) *AppBuilder {
	b.fileManager = f
	return b
}

func (b *AppBuilder) WithEditor(e EditorLauncher) *AppBuilder {
	b.editor = e
	return b
}

func (b *AppBuilder) Build(_ *testing.T) *App {
	provider := config.NewDefaultConfigProvider()
	provider.SetConfig(b.config)
	return &App{
		Logger:         b.logger,
		Config:         b.config,
		ConfigProvider: provider,
		AppService:     b.appService,
		FileManager:    b.fileManager,
		Editor:         b.editor,
	}
}
