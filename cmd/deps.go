package cmd

import (
	"github.com/benbjohnson/clock"
	"github.com/trly/deployctl/internal/log"
)

// CommonDeps provides dependencies common across commands.
type CommonDeps struct {
	Clock  clock.Clock
	Logger log.Logger
}

// NewCommonDeps creates production common dependencies.
func NewCommonDeps(logger log.Logger) CommonDeps {
	return CommonDeps{
		Clock:  clock.New(),
		Logger: logger,
	}
}

// NewRootDeps creates common root dependencies for all commands.
func NewRootDeps(app *App) CommonDeps {
	return NewCommonDeps(app.Logger)
}
