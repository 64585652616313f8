package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/past/internal/analyze"
	"github.com/chazuruo/past/internal/export"
)

// ExportOptions contains the options for the export command.
type ExportOptions struct {
	historyOptions
	Format string
	Out    string
	TopN   int
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an analysis report",
		Long: `Run the full analysis and write a report in JSON, CSV, or
Markdown. Reports carry a unique ID and a generation timestamp.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts)
		},
	}

	addHistoryFlags(cmd, &opts.historyOptions)
	cmd.Flags().StringVar(&opts.Format, "format", "json", "export format: json, csv, or md")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVarP(&opts.TopN, "top-n", "n", 0, "number of top entries per section (default from config)")

	return cmd
}

func runExport(opts *ExportOptions) error {
	format, err := export.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(&opts.historyOptions)
	if err != nil {
		return err
	}

	commands, words, err := loadHistory(cfg)
	if err != nil {
		return err
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
	report := export.NewReport(
		sum,
		analyze.TopN(analyze.Frequencies(commands), topN),
		analyze.TopN(analyze.Frequencies(words), topN),
		analyze.TopN(catCounts, topN),
		catCounts,
	)

	if opts.Out == "" {
		return report.Write(os.Stdout, format)
	}

	if err := report.WriteFile(opts.Out, format); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", opts.Out)
	return nil
}
