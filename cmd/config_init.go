package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/trly/deployctl/internal/config"
)

// InitOptions holds init command options.
type InitOptions struct {
	Force bool
}

// InitDeps holds init dependencies.
type InitDeps struct {
	CommonDeps
	UserHomeDir func() (string, error)
	Stat        func(string) (os.FileInfo, error)
	MkdirAll    func(string, os.FileMode) error
	WriteFile   func(string, []byte, os.FileMode) error
	Out         io.Writer
}

// starterConfig is the file written by config init. Unlike Settings it keeps
// empty fields so users see every key they are expected to fill in.
type starterConfig struct {
	APIURL   string `yaml:"apiUrl"`
	APIToken string `yaml:"apiToken"`
	Editor   string `yaml:"editor"`
}

// InitCommand represents the config init command.
type InitCommand struct{}

// NewInitCommand creates a new InitCommand.
func NewInitCommand() *InitCommand {
	return &InitCommand{}
}

// GetCobraCommand returns the cobra command for config init.
func (c *InitCommand) GetCobraCommand() *cobra.Command {
	var opts InitOptions

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a default configuration file",
		Long: `Create a default configuration file at $HOME/.config/deployctl/config.yaml.

The file lists apiUrl, apiToken and editor. Fill in the token before running
edit-post-deployment against a secured app service.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := getApp(cmd)
			if app == nil {
				return fmt.Errorf("application not initialized")
			}
			return c.Run(opts, c.buildDeps(app, cmd.OutOrStdout()))
		},
		SilenceUsage: true,
	}

	initCmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite existing configuration file")

	return initCmd
}

// Run writes the starter configuration file.
func (c *InitCommand) Run(opts InitOptions, deps InitDeps) error {
	homeDir, err := deps.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %w", err)
	}

	configFile := config.UserConfigFile(homeDir)
	configDir := filepath.Dir(configFile)

	_, err = deps.Stat(configFile)
	switch {
	case err == nil && !opts.Force:
		return fmt.Errorf("configuration file already exists at %s, use --force to overwrite", configFile)
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed to check %s: %w", configFile, err)
	}

	if err := deps.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	data, err := yaml.Marshal(starterConfig{APIURL: config.DefaultAPIURL})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The token lives in this file, so it is private to the user.
	if err := deps.WriteFile(configFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configFile, err)
	}

	deps.Logger.Debug("Wrote configuration file", "path", configFile, "force", opts.Force)
	_, _ = fmt.Fprintf(deps.Out, "Configuration file created at %s\n", configFile)
	return nil
}

// buildDeps creates production dependencies for the init command.
func (c *InitCommand) buildDeps(app *App, out io.Writer) InitDeps {
	return InitDeps{
		CommonDeps:  NewRootDeps(app),
		UserHomeDir: os.UserHomeDir,
		Stat:        os.Stat,
		MkdirAll:    os.MkdirAll,
		WriteFile:   os.WriteFile,
		Out:         out,
	}
}
