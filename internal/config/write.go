package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazuruo/past/internal/errors"
)

// DefaultConfigPath returns the path where a new config file is written.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", &errors.ConfigError{Err: err}
	}
	return filepath.Join(homeDir, ".config", "past", "config.toml"), nil
}

// Write serializes the config as TOML and writes it to path, creating the
// parent directory if needed.
func Write(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return &errors.ConfigError{Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &errors.ConfigError{Path: path, Err: fmt.Errorf("%w: %v", errors.ErrIO, err)}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &errors.ConfigError{Path: path, Err: fmt.Errorf("%w: %v", errors.ErrIO, err)}
	}
	return nil
}
