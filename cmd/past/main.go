package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/past/internal/cli"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	cli.SetVersionInfo(Version, Commit, Date)

	rootCmd := &cobra.Command{
		Use:   "past",
		Short: "Shell history analyzer",
		Long: `past ingests your shell's command history, classifies commands into
semantic categories, reports usage statistics and likely mistypes, and
offers an incrementally-filtered interactive picker over past commands.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(cli.NewInitCommand())
	rootCmd.AddCommand(cli.NewStatsCommand())
	rootCmd.AddCommand(cli.NewSearchCommand())
	rootCmd.AddCommand(cli.NewPickCommand())
	rootCmd.AddCommand(cli.NewExportCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
