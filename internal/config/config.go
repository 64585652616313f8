// Package config provides configuration management for past.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"strings"

	"github.com/chazuruo/past/internal/errors"
)

// Config is the top-level configuration struct for past.
type Config struct {
	History  HistoryConfig  `toml:"history"`
	Analysis AnalysisConfig `toml:"analysis"`
	TUI      TUIConfig      `toml:"tui"`
}

// HistoryConfig contains history acquisition settings.
type HistoryConfig struct {
	// Shell is the shell whose history is analyzed.
	// Valid values: "bash", "zsh", "fish", "ksh", "tcsh".
	Shell string `toml:"shell"`

	// File overrides the shell's default history file path.
	File string `toml:"file"`
}

// AnalysisConfig contains statistics settings.
type AnalysisConfig struct {
	// TopN is the number of top commands/words/categories to report.
	TopN int `toml:"top_n"`

	// CategoriesFile points at a YAML file overriding the built-in
	// category keyword tables (optional).
	CategoriesFile string `toml:"categories_file"`

	// Mistypes toggles the edit-distance mistype scan, which is
	// quadratic in the number of distinct commands.
	Mistypes bool `toml:"mistypes"`
}

// TUIConfig contains terminal UI settings.
type TUIConfig struct {
	// Enabled controls whether interactive mode is available
	// (when false, falls back to plain output).
	Enabled bool `toml:"enabled"`
}

// validShells lists the shells past knows how to read history for.
var validShells = []string{"bash", "zsh", "fish", "ksh", "tcsh"}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Shell: detectShell(),
		},
		Analysis: AnalysisConfig{
			TopN:     15,
			Mistypes: true,
		},
		TUI: TUIConfig{
			Enabled: true,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.History.Shell != "" && !isValidShell(c.History.Shell) {
		return &errors.ConfigError{
			Err: fmt.Errorf("%w: shell %q (valid: %s)",
				errors.ErrInvalid, c.History.Shell, strings.Join(validShells, ", ")),
		}
	}
	if c.Analysis.TopN <= 0 {
		return &errors.ConfigError{
			Err: fmt.Errorf("%w: top_n must be positive, got %d",
				errors.ErrInvalid, c.Analysis.TopN),
		}
	}
	return nil
}

func isValidShell(shell string) bool {
	for _, s := range validShells {
		if s == shell {
			return true
		}
	}
	return false
}
