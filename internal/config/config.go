// Package config provides configuration management for deployctl
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Provider defines the interface for configuration providers.
type Provider interface {
	// GetConfig returns the current application configuration.
	GetConfig() *Settings
	// SetConfig sets the application configuration.
	SetConfig(c *Settings)
	// InitConfig reads defaults, the config file and the environment.
	InitConfig() (*Settings, error)
	// SetConfigFilePath sets the configuration file path.
	SetConfigFilePath(p string)
}

// defaultConfigProvider implements the Provider interface.
type defaultConfigProvider struct {
	cfg  *Settings
	path string
}

// NewDefaultConfigProvider creates a new default config provider.
func NewDefaultConfigProvider() Provider {
	return &defaultConfigProvider{}
}

// Default configuration values for deployctl.
const (
	DefaultAPIURL         = "http://localhost:8080/api"
	DefaultRequestTimeout = time.Duration(0)
	DefaultVerbose        = false
	EnvPrefix             = "DEPLOYCTL"

	// DirName is the directory under $HOME/.config and /etc holding the config file.
	DirName = "deployctl"
	// FileName is the config file searched for when no path is given.
	FileName = "config.yaml"
)

// UserConfigFile returns the per-user config file path under home.
func UserConfigFile(home string) string {
	return filepath.Join(home, ".config", DirName, FileName)
}

// Settings represents the configuration for deployctl.
type Settings struct {
	APIURL         string        `yaml:"apiUrl" json:"apiUrl" mapstructure:"apiUrl"`
	APIToken       string        `yaml:"apiToken,omitempty" json:"apiToken,omitempty" mapstructure:"apiToken"`
	TempDir        string        `yaml:"tempDir" json:"tempDir" mapstructure:"tempDir"`
	Editor         string        `yaml:"editor,omitempty" json:"editor,omitempty" mapstructure:"editor"`
	RequestTimeout time.Duration `yaml:"requestTimeout" json:"requestTimeout" mapstructure:"requestTimeout"`
	Verbose        bool          `yaml:"verbose" json:"verbose" mapstructure:"verbose"`
}

// Masked returns a copy of the settings safe for display.
func (s Settings) Masked() Settings {
	if s.APIToken != "" {
		s.APIToken = "********"
	}
	return s
}

func (p *defaultConfigProvider) SetConfig(c *Settings) {
	p.cfg = c
}

func (p *defaultConfigProvider) GetConfig() *Settings {
	return p.cfg
}

func (p *defaultConfigProvider) SetConfigFilePath(path string) {
	p.path = path
}

func (p *defaultConfigProvider) InitConfig() (*Settings, error) {
	cfg, err := initConfigInternal(p.path)
	if err != nil {
		return nil, err
	}
	p.cfg = cfg
	return p.cfg, nil
}

func initConfigInternal(configFile string) (*Settings, error) {
	cfg := &Settings{
		APIURL:         DefaultAPIURL,
		TempDir:        os.TempDir(),
		RequestTimeout: DefaultRequestTimeout,
		Verbose:        DefaultVerbose,
	}

	viper.SetDefault("apiUrl", DefaultAPIURL)
	viper.SetDefault("tempDir", cfg.TempDir)
	viper.SetDefault("requestTimeout", DefaultRequestTimeout)
	viper.SetDefault("verbose", DefaultVerbose)

	envBindings := map[string]string{
		"apiUrl":         EnvPrefix + "_API_URL",
		"apiToken":       EnvPrefix + "_API_TOKEN",
		"tempDir":        EnvPrefix + "_TEMP_DIR",
		"editor":         EnvPrefix + "_EDITOR",
		"requestTimeout": EnvPrefix + "_REQUEST_TIMEOUT",
		"verbose":        EnvPrefix + "_VERBOSE",
	}
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	viper.SetConfigType("yaml")
	if configFile != "" {
		// SetConfigName would clear an explicit file, so search paths are only set without one.
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		viper.AddConfigPath(os.ExpandEnv("$HOME/.config/" + DirName))
		viper.AddConfigPath("/etc/" + DirName)
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}

	return cfg, nil
}
