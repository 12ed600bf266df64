package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/trly/deployctl/internal/config"
	"github.com/trly/deployctl/internal/editor"
)

// ConfigShowOptions holds config show options.
type ConfigShowOptions struct {
	Output string
}

// ConfigShowCommand represents the config show command.
type ConfigShowCommand struct{}

// NewConfigShowCommand creates a new ConfigShowCommand.
func NewConfigShowCommand() *ConfigShowCommand {
	return &ConfigShowCommand{}
}

// GetCobraCommand returns the cobra command for config show operations.
func (c *ConfigShowCommand) GetCobraCommand() *cobra.Command {
	var opts ConfigShowOptions

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  "Display the current configuration including defaults and overrides. The API token is masked.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := getApp(cmd)
			if app == nil {
				return fmt.Errorf("application not initialized")
			}
			return c.Run(cmd, app, opts)
		},
		SilenceUsage: true,
	}

	showCmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text, yaml, json)")

	return showCmd
}

// Run prints the effective configuration.
func (c *ConfigShowCommand) Run(cmd *cobra.Command, app *App, opts ConfigShowOptions) error {
	masked := app.Config.Masked()

	if opts.Output != "text" {
		return PrintOutput(cmd.OutOrStdout(), opts.Output, masked)
	}

	return PrintOutput(cmd.OutOrStdout(), "text", settingsRows(masked, effectiveEditor(app)))
}

func settingsRows(s config.Settings, editorCmd string) []KeyValue {
	return []KeyValue{
		{Key: "apiUrl", Value: s.APIURL},
		{Key: "apiToken", Value: s.APIToken},
		{Key: "tempDir", Value: s.TempDir},
		{Key: "editor", Value: editorCmd},
		{Key: "requestTimeout", Value: s.RequestTimeout.String()},
		{Key: "verbose", Value: strconv.FormatBool(s.Verbose)},
	}
}

// effectiveEditor reports the editor that would be launched, if the App's
// launcher can resolve it.
func effectiveEditor(app *App) string {
	if l, ok := app.Editor.(*editor.Launcher); ok {
		return l.Command()
	}
	return app.Config.Editor
}
