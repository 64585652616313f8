// Package cli provides Cobra command definitions for past.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/chazuruo/past/internal/category"
	"github.com/chazuruo/past/internal/config"
	"github.com/chazuruo/past/internal/history"
)

// historyOptions are the flags shared by every command that consumes
// history: an explicit file, a shell override, and a config path.
type historyOptions struct {
	ConfigPath string
	File       string
	Shell      string
}

// loadConfig loads the config from the explicit path, the XDG default, or
// built-in defaults, then layers the shell/file flags on top.
func loadConfig(opts *historyOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadWithDefaults()
	}
	if err != nil {
		return nil, err
	}

	if opts.Shell != "" {
		cfg.History.Shell = opts.Shell
	}
	if opts.File != "" {
		cfg.History.File = opts.File
	}
	return cfg, nil
}

// loadHistory acquires raw history text per the resolved config and
// tokenizes it into commands and words.
func loadHistory(cfg *config.Config) (commands, words []string, err error) {
	var raw string
	if cfg.History.File != "" {
		raw, err = history.ReadFile(cfg.History.File)
	} else {
		raw, err = history.Load(cfg.History.Shell)
	}
	if err != nil {
		return nil, nil, err
	}

	commands, words = history.Tokenize(raw)
	return commands, words, nil
}

// loadTables returns the category tables, honoring a configured override
// file.
func loadTables(cfg *config.Config) (*category.Tables, error) {
	if cfg.Analysis.CategoriesFile != "" {
		return category.LoadTables(cfg.Analysis.CategoriesFile)
	}
	return category.DefaultTables(), nil
}

// addHistoryFlags registers the shared history flags on a command.
func addHistoryFlags(cmd *cobra.Command, opts *historyOptions) {
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "use a specific history file instead of the shell default")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "shell whose history to analyze (bash, zsh, fish, ksh, tcsh)")
}
