package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chazuruo/past/internal/search"
	"github.com/chazuruo/past/internal/tui"
)

// PickOptions contains the options for the pick command.
type PickOptions struct {
	historyOptions
	Query string
}

// NewPickCommand creates the pick command.
func NewPickCommand() *cobra.Command {
	opts := &PickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a command from history",
		Long: `Open an incremental filter over the deduplicated command history
and print the selected command to stdout.

Typing narrows the list by substring match; Up/Down move the selection;
Enter prints the selected command; Esc exits without selecting.

With --no-tui the filtered list is printed instead (newest first, capped
at 20 entries) and nothing is selected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(opts)
		},
	}

	addHistoryFlags(cmd, &opts.historyOptions)
	cmd.Flags().StringVar(&opts.Query, "query", "", "initial filter query")

	return cmd
}

func runPick(opts *PickOptions) error {
	cfg, err := loadConfig(&opts.historyOptions)
	if err != nil {
		return err
	}

	commands, _, err := loadHistory(cfg)
	if err != nil {
		return err
	}

	model := tui.NewPickerModel(commands)

	if IsNoTUI() || !cfg.TUI.Enabled {
		matches := search.Filter(model.Candidates, opts.Query)
		if len(matches) > 20 {
			matches = matches[:20]
		}
		for _, m := range matches {
			fmt.Println(m)
		}
		return nil
	}

	if opts.Query != "" {
		model.QueryInput.SetValue(opts.Query)
		model.QueryInput.CursorEnd()
		model.Matches = search.Filter(model.Candidates, opts.Query)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		// Terminal failure is equivalent to cancelling, never fatal.
		fmt.Fprintf(os.Stderr, "Warning: interactive mode unavailable: %v\n", err)
		return nil
	}

	finalPicker, ok := finalModel.(tui.PickerModel)
	if !ok {
		return fmt.Errorf("unexpected model type from picker")
	}

	if finalPicker.DidConfirm() {
		fmt.Println(finalPicker.Selection())
	} else {
		fmt.Fprintln(os.Stderr, "No command selected.")
	}
	return nil
}
