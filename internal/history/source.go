package history

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/chazuruo/past/internal/errors"
)

// ReadFile reads a history file and returns its raw text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &errors.HistoryError{Op: "read", Err: fmt.Errorf("%w: %v", errors.ErrIO, err), Path: path}
	}
	return string(data), nil
}

// DefaultHistoryPath returns the conventional history file path for a shell.
func DefaultHistoryPath(shell string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &errors.HistoryError{Op: "detect", Err: err}
	}

	switch shell {
	case "bash":
		return filepath.Join(home, ".bash_history"), nil
	case "zsh":
		return filepath.Join(home, ".zsh_history"), nil
	case "fish":
		return filepath.Join(home, ".local/share/fish/fish_history"), nil
	case "ksh":
		return filepath.Join(home, ".sh_history"), nil
	case "tcsh":
		return filepath.Join(home, ".history"), nil
	default:
		return "", &errors.HistoryError{Op: "detect", Err: errors.ErrUnsupportedShell}
	}
}

// Load returns raw history text for the given shell. It reads the shell's
// default history file first and falls back to spawning an interactive shell
// running the history builtin when the file is missing or empty.
func Load(shell string) (string, error) {
	path, err := DefaultHistoryPath(shell)
	if err != nil {
		return "", err
	}

	if text, err := ReadFile(path); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	text, liveErr := Live(shell)
	if liveErr != nil {
		return "", &errors.HistoryError{Op: "load", Err: errors.ErrNoHistory, Path: path}
	}
	return text, nil
}

// Live retrieves history by running the shell's history builtin in an
// interactive subshell. This catches entries not yet flushed to disk.
func Live(shell string) (string, error) {
	out, err := exec.Command(shell, "-i", "-c", "history -r; history").Output()
	if err != nil {
		return "", &errors.HistoryError{Op: "live", Err: err}
	}
	if len(out) == 0 {
		return "", &errors.HistoryError{Op: "live", Err: errors.ErrNoHistory}
	}
	return string(out), nil
}

// DetectShell attempts to detect the user's current shell from environment.
func DetectShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}

	// Default to bash
	return "bash"
}

// DetectAvailableShells returns the names of known shells found on PATH.
func DetectAvailableShells() []string {
	var found []string
	for _, shell := range []string{"bash", "zsh", "fish", "ksh", "tcsh"} {
		if _, err := exec.LookPath(shell); err == nil {
			found = append(found, shell)
		}
	}
	return found
}

// DetectHistoryFiles returns all shell history files found in their
// conventional locations.
func DetectHistoryFiles() []string {
	var found []string
	home, err := os.UserHomeDir()
	if err != nil {
		return found
	}

	locations := []string{
		filepath.Join(home, ".bash_history"),
		filepath.Join(home, ".local/share/bash/history"),
		filepath.Join(home, ".zsh_history"),
		filepath.Join(home, ".zhistory"),
		filepath.Join(home, ".histfile"),
		filepath.Join(home, ".history"),
		filepath.Join(home, ".local/share/fish/fish_history"),
	}

	for _, path := range locations {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			found = append(found, path)
		}
	}

	return found
}
