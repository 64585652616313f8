package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chazuruo/past/internal/config"
	"github.com/chazuruo/past/internal/errors"
	"github.com/chazuruo/past/internal/history"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	ConfigPath string

	// Scriptable/flag options for --no-tui mode
	Shell    string
	File     string
	TopN     int
	Mistypes bool
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize past configuration",
		Long: `Initialize the past configuration file.

The init command detects the shells available on this machine and guides
you through choosing the one whose history to analyze. The configuration
is written to ~/.config/past/config.toml.

Use --no-tui with flags for scripted setup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "shell whose history to analyze")
	cmd.Flags().StringVar(&opts.File, "history-file", "", "explicit history file path")
	cmd.Flags().IntVar(&opts.TopN, "top-n", 0, "number of top entries to report")
	cmd.Flags().BoolVar(&opts.Mistypes, "mistypes", true, "enable the mistype scan")

	return cmd
}

func runInit(opts *InitOptions) error {
	cfg := config.DefaultConfig()
	cfg.History.File = opts.File
	cfg.Analysis.Mistypes = opts.Mistypes
	if opts.TopN > 0 {
		cfg.Analysis.TopN = opts.TopN
	}

	if opts.Shell != "" {
		cfg.History.Shell = opts.Shell
	} else if !IsNoTUI() {
		shell, err := promptForShell()
		if err != nil {
			return err
		}
		cfg.History.Shell = shell
	}

	if opts.File == "" && !IsNoTUI() {
		if files := history.DetectHistoryFiles(); len(files) > 0 {
			fmt.Println("History files found:")
			for _, f := range files {
				fmt.Printf("  %s\n", f)
			}
		}
	}

	path := opts.ConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	if err := config.Write(cfg, path); err != nil {
		return err
	}

	fmt.Printf("Configuration saved to %s\n", path)
	return nil
}

// promptForShell asks the user to choose among the shells found on PATH.
// A single detected shell is taken without prompting.
func promptForShell() (string, error) {
	shells := history.DetectAvailableShells()
	if len(shells) == 0 {
		return history.DetectShell(), nil
	}
	if len(shells) == 1 {
		fmt.Printf("Detected shell: %s\n", shells[0])
		return shells[0], nil
	}

	options := make([]huh.Option[string], 0, len(shells))
	for _, shell := range shells {
		options = append(options, huh.NewOption(shell, shell))
	}

	selected := shells[0]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Multiple shells detected. Which history should past analyze?").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", errors.Wrap(errors.ErrCanceled, "init")
	}

	return selected, nil
}
