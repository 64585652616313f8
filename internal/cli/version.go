package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version info, set by main from build-time ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo records the build-time version details.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("past %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
