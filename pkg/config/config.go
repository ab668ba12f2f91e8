// Package config provides configuration management functionality for the git-collab application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// PayloadFileName is the name of the payload script stored in the root directory.
	PayloadFileName = "post-commit"
	// GitLogScriptFileName is the name of the pretty-log script stored in the root directory.
	GitLogScriptFileName = "git-log-co-author"
	// StatusFileName is the default name of the status file.
	StatusFileName = "status.yaml"
	// ConfigFileName is the default name of the configuration file.
	ConfigFileName = "config.yaml"
	// RootDirName is the default name of the root directory, relative to the home directory.
	RootDirName = ".git-collab"
)

// Config represents the application configuration.
type Config struct {
	RootDir    string `yaml:"root_dir"`    // Directory holding the payload, pretty-log script and status
	StatusFile string `yaml:"status_file"` // Path to the status file
}

// PayloadFile returns the path of the canonical payload script copied into hooks directories.
func (c Config) PayloadFile() string {
	return filepath.Join(c.RootDir, PayloadFileName)
}

// GitLogScriptFile returns the path of the pretty-log script used by the `lg` alias.
func (c Config) GitLogScriptFile() string {
	return filepath.Join(c.RootDir, GitLogScriptFileName)
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.RootDir == "" {
		return ErrRootDirEmpty
	}
	if c.StatusFile == "" {
		return ErrStatusFileEmpty
	}
	return nil
}

// DefaultConfigPath returns the configuration file path used when none is given.
func DefaultConfigPath() string {
	return filepath.Join(homeDir(), RootDirName, ConfigFileName)
}

// expandTildes expands ~ in every path of the configuration.
func (c *Config) expandTildes() error {
	var err error
	if c.RootDir, err = expandTilde(c.RootDir); err != nil {
		return fmt.Errorf("failed to expand root_dir: %w", err)
	}
	if c.StatusFile, err = expandTilde(c.StatusFile); err != nil {
		return fmt.Errorf("failed to expand status_file: %w", err)
	}
	return nil
}

func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		return "."
	}
	return home
}
