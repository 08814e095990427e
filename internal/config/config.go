// SPDX-License-Identifier: MPL-2.0

// Package config loads rustlab configuration.
//
// Configuration comes from an optional TOML file in the platform config
// directory (or the workspace root), RUSTLAB_* environment variables, and
// built-in defaults, in that order of precedence. Loading produces an
// immutable Config value computed once at startup and passed down.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"rustlab-cli/internal/issue"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "rustlab"
	// ConfigFileName is the name of the config file without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

type (
	// Config is the resolved rustlab configuration.
	Config struct {
		// CheckCommand is the advisory build check run after generation.
		CheckCommand string `mapstructure:"check_command"`
		// Edition is the Rust edition written into generated manifests.
		Edition string `mapstructure:"edition"`
		// Quality configures the `rustlab check` pipeline.
		Quality QualityConfig `mapstructure:"quality"`
		// UI configures terminal output.
		UI UIConfig `mapstructure:"ui"`
	}

	// QualityConfig lists the commands run by `rustlab check`, in order.
	QualityConfig struct {
		Commands []string `mapstructure:"commands" toml:"commands"`
	}

	// UIConfig holds terminal output settings.
	UIConfig struct {
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		CheckCommand: "cargo check --quiet",
		Edition:      "2021",
		Quality: QualityConfig{
			Commands: []string{
				"cargo fmt --check",
				"cargo clippy -- -D warnings",
				"cargo test",
			},
		},
		UI: UIConfig{Verbose: false},
	}
}

// ConfigDir returns the rustlab configuration directory using
// platform-specific conventions: %APPDATA% on Windows, Application Support
// on macOS, and $XDG_CONFIG_HOME (default ~/.config) elsewhere.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load resolves the configuration. A missing config file is not an error;
// defaults apply. An explicit path loads that file exclusively.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("check_command", defaults.CheckCommand)
	v.SetDefault("edition", defaults.Edition)
	v.SetDefault("quality.commands", defaults.Quality.Commands)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix("RUSTLAB")
	// Nested keys like ui.verbose map to RUSTLAB_UI_VERBOSE.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(explicitPath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file contains valid TOML").
				Wrap(err).
				BuildError()
		}
	} else {
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(cfgDir)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(v.ConfigFileUsed()).
					WithSuggestion("Check that the file contains valid TOML").
					Wrap(err).
					BuildError()
			}
			// No config file found: defaults apply.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
