// Package cli provides common configuration and utility functions for the git-collab CLI.
package cli

import (
	"github.com/lerenn/git-collab/configs"
	"github.com/lerenn/git-collab/pkg/config"
	"github.com/lerenn/git-collab/pkg/logger"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(GetConfigPath())
}

// GetConfigPath returns the config file path selected by the flags.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigPath()
}

// EnsureConfig writes the default configuration file when it does not exist yet.
func EnsureConfig() error {
	created, err := NewConfigManager().EnsureConfig(configs.DefaultConfigYAML)
	if err != nil {
		return err
	}
	if created {
		NewLogger().Infof("Configuration written to %s", GetConfigPath())
	}
	return nil
}

// NewLogger returns the logger selected by the quiet and verbose flags.
// Quiet wins when both are set.
func NewLogger() logger.Logger {
	switch {
	case Quiet:
		return logger.NewQuietLogger()
	case Verbose:
		return logger.NewVerboseLogger()
	default:
		return logger.NewDefaultLogger()
	}
}
