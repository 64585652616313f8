// Package config provides configuration management for past.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/chazuruo/past/internal/errors"
)

// DetectConfigPath searches for a config file using XDG standard paths.
//
// Search order:
// 1. ~/.config/past/config.toml
//
// Returns empty string if no config file is found (caller should use defaults).
func DetectConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "past", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ConfigError{Path: path, Err: fmt.Errorf("%w: %v", errors.ErrIO, err)}
	}

	// Start with defaults so omitted fields keep sensible values.
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values.
// If a config file is found but fails to load/validate, returns an error.
func LoadWithDefaults() (*Config, error) {
	path := DetectConfigPath()
	if path == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(path)
}

// applyEnvOverrides applies PAST_* environment variables on top of the
// loaded configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PAST_SHELL"); v != "" {
		cfg.History.Shell = v
	}
	if v := os.Getenv("PAST_HISTORY_FILE"); v != "" {
		cfg.History.File = v
	}
	if v := os.Getenv("PAST_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.TopN = n
		}
	}
	if v := os.Getenv("PAST_NO_TUI"); v == "1" || v == "true" {
		cfg.TUI.Enabled = false
	}
}

// detectShell returns the basename of $SHELL, defaulting to bash.
func detectShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	return "bash"
}
