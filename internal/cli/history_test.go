package cli

import (
	"reflect"
	"testing"

	"github.com/chazuruo/past/internal/config"
	"github.com/chazuruo/past/internal/testutil"
)

func TestLoadConfigFlagLayering(t *testing.T) {
	for _, key := range []string{"PAST_SHELL", "PAST_HISTORY_FILE", "PAST_TOP_N", "PAST_NO_TUI"} {
		t.Setenv(key, "")
	}

	path := testutil.WriteFile(t, "config.toml", `
[history]
shell = "bash"

[analysis]
top_n = 10
`)

	opts := &historyOptions{
		ConfigPath: path,
		Shell:      "zsh",
		File:       "/tmp/custom",
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	// Flags win over the file.
	if cfg.History.Shell != "zsh" {
		t.Errorf("Shell = %q, want %q", cfg.History.Shell, "zsh")
	}
	if cfg.History.File != "/tmp/custom" {
		t.Errorf("File = %q, want %q", cfg.History.File, "/tmp/custom")
	}
	if cfg.Analysis.TopN != 10 {
		t.Errorf("TopN = %d, want 10", cfg.Analysis.TopN)
	}
}

func TestLoadHistoryFromExplicitFile(t *testing.T) {
	path := testutil.WriteHistory(t, "  1  ls -la\n  2  git status\n")

	cfg := config.DefaultConfig()
	cfg.History.File = path

	commands, words, err := loadHistory(cfg)
	if err != nil {
		t.Fatalf("loadHistory() error = %v", err)
	}

	wantCmds := []string{"ls -la", "git status"}
	if !reflect.DeepEqual(commands, wantCmds) {
		t.Errorf("commands = %q, want %q", commands, wantCmds)
	}
	wantWords := []string{"ls", "git", "status"}
	if !reflect.DeepEqual(words, wantWords) {
		t.Errorf("words = %q, want %q", words, wantWords)
	}
}

func TestLoadTablesOverride(t *testing.T) {
	path := testutil.WriteFile(t, "categories.yaml", `
categories:
  - label: Custom
    keywords: ["frob"]
`)

	cfg := config.DefaultConfig()
	cfg.Analysis.CategoriesFile = path

	tables, err := loadTables(cfg)
	if err != nil {
		t.Fatalf("loadTables() error = %v", err)
	}
	if got := tables.Categorize("frob --all"); !reflect.DeepEqual(got, []string{"Custom"}) {
		t.Errorf("Categorize(frob --all) = %v, want [Custom]", got)
	}
}
