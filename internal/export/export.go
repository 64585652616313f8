// Package export renders analysis reports in machine- and human-readable
// formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/chazuruo/past/internal/analyze"
)

// Format represents the export format.
type Format string

const (
	// FormatJSON exports as JSON.
	FormatJSON Format = "json"
	// FormatCSV exports as CSV.
	FormatCSV Format = "csv"
	// FormatMarkdown exports as Markdown.
	FormatMarkdown Format = "md"
)

// ParseFormat validates a format string from the CLI.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatMarkdown:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (valid: json, csv, md)", s)
	}
}

// Summary is the exported view of analyze.Summary. Variety ratios are
// pointers so an undefined ratio (no commands at all) exports as null
// rather than a fake zero.
type Summary struct {
	TotalCommands  int      `json:"total_commands"`
	UniqueCommands int      `json:"unique_commands"`
	CommandVariety *float64 `json:"command_variety"`
	TotalKeywords  int      `json:"total_keywords"`
	UniqueKeywords int      `json:"unique_keywords"`
	KeywordVariety *float64 `json:"keyword_variety"`
	Mistypes       int      `json:"mistypes"`
}

// Report is a complete analysis run ready for serialization.
type Report struct {
	ID            string            `json:"id"`
	GeneratedAt   string            `json:"generated_at"`
	Summary       Summary           `json:"summary"`
	TopCommands   []analyze.Counted `json:"top_commands"`
	TopWords      []analyze.Counted `json:"top_words"`
	TopCategories []analyze.Counted `json:"top_categories"`
	AllCategories map[string]int    `json:"all_categories"`
}

// NewReport assembles a report from analysis results, stamping it with a
// fresh report ID and generation time.
func NewReport(sum analyze.Summary, topCommands, topWords, topCategories []analyze.Counted, allCategories map[string]int) *Report {
	exported := Summary{
		TotalCommands:  sum.TotalCommands,
		UniqueCommands: sum.UniqueCommands,
		TotalKeywords:  sum.TotalWords,
		UniqueKeywords: sum.UniqueWords,
		Mistypes:       sum.Mistypes,
	}
	if v, ok := sum.CommandVariety(); ok {
		exported.CommandVariety = &v
	}
	if v, ok := sum.WordVariety(); ok {
		exported.KeywordVariety = &v
	}

	return &Report{
		ID:            uuid.New().String(),
		GeneratedAt:   time.Now().Format(time.RFC3339),
		Summary:       exported,
		TopCommands:   topCommands,
		TopWords:      topWords,
		TopCategories: topCategories,
		AllCategories: allCategories,
	}
}

// Write renders the report to w in the given format.
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return r.writeJSON(w)
	case FormatCSV:
		return r.writeCSV(w)
	case FormatMarkdown:
		return r.writeMarkdown(w)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// WriteFile renders the report to a file.
func (r *Report) WriteFile(path string, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return r.Write(f, format)
}

func (r *Report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// writeCSV emits one row per counted item: section,rank,value,count.
func (r *Report) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"section", "rank", "value", "count"}); err != nil {
		return err
	}

	sections := []struct {
		name  string
		items []analyze.Counted
	}{
		{"top_commands", r.TopCommands},
		{"top_words", r.TopWords},
		{"top_categories", r.TopCategories},
	}
	for _, section := range sections {
		for i, item := range section.items {
			row := []string{section.name, strconv.Itoa(i + 1), item.Value, strconv.Itoa(item.Count)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// markdownTemplate renders the report as a Markdown document.
var markdownTemplate = template.Must(template.New("report").Parse(`# Command History Analysis

Report {{.ID}}, generated {{.GeneratedAt}}.

## Summary

| Metric | Value |
|---|---|
| Total commands | {{.Summary.TotalCommands}} |
| Unique commands | {{.Summary.UniqueCommands}} |
| Total keywords | {{.Summary.TotalKeywords}} |
| Unique keywords | {{.Summary.UniqueKeywords}} |
| Likely mistypes | {{.Summary.Mistypes}} |

## Top Commands
{{range .TopCommands}}
- ` + "`{{.Value}}`" + ` ({{.Count}}){{end}}

## Top Keywords
{{range .TopWords}}
- {{.Value}} ({{.Count}}){{end}}

## Top Categories
{{range .TopCategories}}
- {{.Value}} ({{.Count}}){{end}}
`))

func (r *Report) writeMarkdown(w io.Writer) error {
	return markdownTemplate.Execute(w, r)
}
