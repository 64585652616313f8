package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chazuruo/past/internal/analyze"
	"github.com/chazuruo/past/internal/export"
)

// StatsOptions contains the options for the stats command.
type StatsOptions struct {
	historyOptions
	TopN  int
	JSON  bool
	Table bool
	Quiet bool
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Analyze command history and print statistics",
		Long: `Analyze the shell's command history: totals, variety ratios,
most frequent commands/keywords, category distribution, and a count of
likely-mistyped one-off commands.

Output modes:
- default: a boxed text report
- --table: plain tabular output (suits --no-tui consumers)
- --json: structured output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts)
		},
	}

	addHistoryFlags(cmd, &opts.historyOptions)
	cmd.Flags().IntVarP(&opts.TopN, "top-n", "n", 0, "number of top commands/words to display (default from config)")
	cmd.Flags().BoolVarP(&opts.JSON, "json", "j", false, "output results in JSON format")
	cmd.Flags().BoolVar(&opts.Table, "table", false, "output plain tables instead of the boxed report")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress progress messages")

	return cmd
}

func runStats(opts *StatsOptions) error {
	cfg, err := loadConfig(&opts.historyOptions)
	if err != nil {
		return err
	}

	if !opts.Quiet && !opts.JSON {
		fmt.Fprintln(os.Stderr, "past - loading your command history...")
	}

	commands, words, err := loadHistory(cfg)
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		return fmt.Errorf("no valid commands found in the history")
	}

	tables, err := loadTables(cfg)
	if err != nil {
		return err
	}

	topN := opts.TopN
	if topN <= 0 {
		topN = cfg.Analysis.TopN
	}

	sum := analyze.Summarize(commands, words, cfg.Analysis.Mistypes)
	catCounts := tables.Counts(commands)
	topCommands := analyze.TopN(analyze.Frequencies(commands), topN)
	topWords := analyze.TopN(analyze.Frequencies(words), topN)
	topCategories := analyze.TopN(catCounts, topN)

	if !opts.Quiet && !opts.JSON {
		fmt.Fprintf(os.Stderr, "analyzed %d commands with %d keywords\n\n", len(commands), len(words))
	}

	if opts.JSON {
		report := export.NewReport(sum, topCommands, topWords, topCategories, catCounts)
		return report.Write(os.Stdout, export.FormatJSON)
	}

	if opts.Table || IsNoTUI() {
		renderTables(sum, topCommands, topWords, topCategories)
		return nil
	}

	renderBox(sum, topCommands, topWords, topCategories)
	return nil
}

const boxInnerWidth = 44

var (
	boxStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")) // cyan, as the original report

	// numPrinter renders counts with thousands separators.
	numPrinter = message.NewPrinter(language.English)
)

// renderBox prints the boxed report the original tool is known for.
func renderBox(sum analyze.Summary, topCommands, topWords, topCategories []analyze.Counted) {
	lines := []string{
		"╔════════════════════════════════════════════╗",
		"║          COMMAND HISTORY ANALYSIS          ║",
		"╟────────────────────────────────────────────╢",
		boxRow("Total commands:", numPrinter.Sprintf("%d", sum.TotalCommands)),
		boxRow("Unique commands:", numPrinter.Sprintf("%d", sum.UniqueCommands)),
		boxRow("Command variety:", formatVariety(sum.CommandVariety())),
		boxRow("Likely mistypes:", numPrinter.Sprintf("%d", sum.Mistypes)),
		"╟────────────────────────────────────────────╢",
		boxRow("Total keywords:", numPrinter.Sprintf("%d", sum.TotalWords)),
		boxRow("Unique keywords:", numPrinter.Sprintf("%d", sum.UniqueWords)),
		boxRow("Keyword variety:", formatVariety(sum.WordVariety())),
		"╟────────────────────────────────────────────╢",
		"║           MOST FREQUENT COMMANDS           ║",
	}
	lines = append(lines, boxItems(topCommands)...)

	lines = append(lines,
		"╟────────────────────────────────────────────╢",
		"║            MOST FREQUENT WORDS             ║",
	)
	lines = append(lines, boxItems(topWords)...)

	lines = append(lines,
		"╟────────────────────────────────────────────╢",
		"║             TOP CATEGORIES                 ║",
	)
	lines = append(lines, boxItems(topCategories)...)

	lines = append(lines, "╚════════════════════════════════════════════╝")

	for _, line := range lines {
		fmt.Println(boxStyle.Render(line))
	}
}

// boxRow formats a summary line padded to the box width.
func boxRow(label, value string) string {
	return fmt.Sprintf("║ %-20s %21s ║", label, value)
}

// boxItems formats ranked entries, truncating long values to keep the box
// aligned. Truncation counts runes so multibyte values are never split
// mid-sequence.
func boxItems(items []analyze.Counted) []string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		value := truncateRunes(item.Value, 30)
		text := fmt.Sprintf("%d. %-33s%5s", i+1, value, numPrinter.Sprintf("%d", item.Count))
		text = truncateRunes(text, boxInnerWidth-2)
		lines = append(lines, fmt.Sprintf("║ %-*s ║", boxInnerWidth-2, text))
	}
	return lines
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// formatVariety renders a variety ratio as a percentage, or N/A when the
// ratio is undefined (empty history).
func formatVariety(v float64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", v*100)
}

// renderTables prints plain tables, one per section.
func renderTables(sum analyze.Summary, topCommands, topWords, topCategories []analyze.Counted) {
	summary := table.New("Metric", "Value")
	summary.AddRow("Total commands", sum.TotalCommands)
	summary.AddRow("Unique commands", sum.UniqueCommands)
	summary.AddRow("Command variety", formatVariety(sum.CommandVariety()))
	summary.AddRow("Total keywords", sum.TotalWords)
	summary.AddRow("Unique keywords", sum.UniqueWords)
	summary.AddRow("Keyword variety", formatVariety(sum.WordVariety()))
	summary.AddRow("Likely mistypes", sum.Mistypes)
	summary.Print()

	sections := []struct {
		title string
		items []analyze.Counted
	}{
		{"Command", topCommands},
		{"Keyword", topWords},
		{"Category", topCategories},
	}
	for _, section := range sections {
		fmt.Println()
		tbl := table.New("Rank", section.title, "Count")
		for i, item := range section.items {
			tbl.AddRow(i+1, item.Value, item.Count)
		}
		tbl.Print()
	}
}
