package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestNoTUIFlag(t *testing.T) {
	noTUI = false
	t.Cleanup(func() { noTUI = false })

	cmd := &cobra.Command{Use: "root"}
	AddGlobalFlags(cmd)

	if IsNoTUI() {
		t.Fatal("IsNoTUI() = true before the flag is set")
	}

	if err := cmd.PersistentFlags().Set("no-tui", "true"); err != nil {
		t.Fatalf("setting --no-tui: %v", err)
	}
	if !IsNoTUI() {
		t.Error("IsNoTUI() = false after --no-tui")
	}
}
