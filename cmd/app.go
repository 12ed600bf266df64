package cmd

import (
	"github.com/trly/deployctl/internal/api"
	"github.com/trly/deployctl/internal/config"
	"github.com/trly/deployctl/internal/editor"
	"github.com/trly/deployctl/internal/execx"
	"github.com/trly/deployctl/internal/fs"
	"github.com/trly/deployctl/internal/log"
)

// App holds the application dependencies for command line interface.
type App struct {
	Logger         log.Logger
	Config         *config.Settings
	ConfigProvider config.Provider
	AppService     api.AppService
	FileManager    FileManager
	Editor         EditorLauncher
}

// NewApp creates a new App with all dependencies initialized.
func NewApp(logger log.Logger, configProv config.Provider) *App {
	return &App{
		Logger:         logger,
		Config:         configProv.GetConfig(),
		ConfigProvider: configProv,
		AppService:     api.NewClient(configProv, logger, Version),
		FileManager:    fs.NewServiceWithLogger(configProv, logger),
		Editor:         editor.NewLauncher(configProv, execx.NewRealRunner(), logger),
	}
}
