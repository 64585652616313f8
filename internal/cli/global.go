package cli

import "github.com/spf13/cobra"

// noTUI is written once by flag parsing before command dispatch and read
// afterwards, so no synchronization is needed.
var noTUI bool

// AddGlobalFlags registers the persistent flags shared by every command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&noTUI, "no-tui", false,
		"disable TUI/interactive mode; use plain text or JSON output")
}

// IsNoTUI reports whether interactive surfaces are disabled.
func IsNoTUI() bool {
	return noTUI
}
