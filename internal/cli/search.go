package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chazuruo/past/internal/search"
)

// SearchOptions contains the options for the search command.
type SearchOptions struct {
	historyOptions
	Pattern       string
	CaseSensitive bool
	Category      bool
	JSON          bool
}

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search <pattern>",
		Short: "Search history by regular expression",
		Long: `Search command history with a regular expression.

By default the pattern is matched against full commands and against
extracted keywords, case-insensitively. A pattern that fails to compile
matches nothing.

With --category the pattern is matched against category labels instead:
the output lists the matching categories and every command holding at
least one matching label.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Pattern = args[0]
			return runSearch(opts)
		},
	}

	addHistoryFlags(cmd, &opts.historyOptions)
	cmd.Flags().BoolVarP(&opts.CaseSensitive, "case-sensitive", "c", false, "match case-sensitively")
	cmd.Flags().BoolVar(&opts.Category, "category", false, "match the pattern against category labels")
	cmd.Flags().BoolVarP(&opts.JSON, "json", "j", false, "output results in JSON format")

	return cmd
}

var searchHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func runSearch(opts *SearchOptions) error {
	cfg, err := loadConfig(&opts.historyOptions)
	if err != nil {
		return err
	}

	commands, words, err := loadHistory(cfg)
	if err != nil {
		return err
	}

	if opts.Category {
		tables, err := loadTables(cfg)
		if err != nil {
			return err
		}
		matchedCommands, matchedCategories := search.ByCategory(commands, tables, opts.Pattern, opts.CaseSensitive)

		if opts.JSON {
			return writeJSON(map[string]interface{}{
				"categories": matchedCategories,
				"commands":   matchedCommands,
			})
		}

		fmt.Println(searchHeaderStyle.Render("=== CATEGORY SEARCH RESULTS ==="))
		printMatches("Matching Categories", matchedCategories)
		printMatches("Matching Commands", matchedCommands)
		if len(matchedCommands) == 0 && len(matchedCategories) == 0 {
			fmt.Println("\nNo matches found.")
		}
		return nil
	}

	matchedCommands := search.Commands(commands, opts.Pattern, opts.CaseSensitive)
	matchedWords := search.Words(words, opts.Pattern, opts.CaseSensitive)

	if opts.JSON {
		return writeJSON(map[string]interface{}{
			"commands": matchedCommands,
			"words":    matchedWords,
		})
	}

	fmt.Println(searchHeaderStyle.Render("=== KEYWORD SEARCH RESULTS ==="))
	printMatches("Matching Commands", matchedCommands)
	printMatches("Matching Keywords", matchedWords)
	if len(matchedCommands) == 0 && len(matchedWords) == 0 {
		fmt.Println("\nNo matches found.")
	}
	return nil
}

// printMatches prints a numbered section, skipping empty sections.
func printMatches(title string, matches []string) {
	if len(matches) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Render(title + ":"))
	for i, m := range matches {
		fmt.Printf("%d. %s\n", i+1, m)
	}
}

func writeJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
