// Package testutil provides helper functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteHistory writes history content to a temporary file and returns the
// path. The file is automatically deleted when the test completes.
func WriteHistory(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write history file: %v", err)
	}

	return path
}

// WriteFile writes content to a named file in a fresh temp dir and returns
// the path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}

	return path
}
