// Package cmd provides the command line interface for deployctl
/*
Copyright © 2025 Travis Lyons travis.lyons@gmail.com

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trly/deployctl/internal/config"
	"github.com/trly/deployctl/internal/log"
)

type contextKey string

const appContextKey contextKey = "app"

// RootCommand represents the root command for deployctl CLI.
type RootCommand struct {
	configFilePath string
	verbose        bool
}

// GetCobraCommand returns the cobra root command for deployctl CLI.
func (c *RootCommand) GetCobraCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deployctl",
		Short: "deployctl manages files attached to deployed applications.",
		Long: `deployctl manages files attached to deployed applications.
It fetches application files from the deployment service, lets you edit them
locally in your editor and uploads the result.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			// Tests install their own App.
			if _, ok := ctx.Value(appContextKey).(*App); ok {
				return nil
			}

			app, err := c.initApp()
			if err != nil {
				return err
			}

			cmd.SetContext(context.WithValue(ctx, appContextKey, app))
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&c.configFilePath, "config", "", "Path to the configuration file")

	rootCmd.AddCommand(
		NewEditPostDeploymentCommand().GetCobraCommand(),
		NewConfigCommand().GetCobraCommand(),
		NewVersionCommand().GetCobraCommand(),
	)

	return rootCmd
}

// initApp loads configuration and builds the production App.
func (c *RootCommand) initApp() (*App, error) {
	configProv := config.NewDefaultConfigProvider()
	if c.configFilePath != "" {
		configProv.SetConfigFilePath(c.configFilePath)
	}

	cfg, err := configProv.InitConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if c.verbose {
		cfg.Verbose = true
	}

	log.Init(cfg.Verbose)
	logger := log.GetLogger()
	logger.Debug("Configuration loaded", "apiUrl", cfg.APIURL, "tempDir", cfg.TempDir)

	return NewApp(logger, configProv), nil
}

// getApp retrieves the App from the command context.
func getApp(cmd *cobra.Command) *App {
	if cmd.Context() == nil {
		return nil
	}
	app, _ := cmd.Context().Value(appContextKey).(*App)
	return app
}
