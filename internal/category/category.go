// Package category classifies shell commands into semantic categories using
// keyword tables.
//
// Classification is a heuristic, not a parser: every category's keyword list
// is tested independently via case-insensitive substring containment against
// the whole command, so a command may collect several labels ("cargo build"
// is both package management and Rust). Keyword overlap can over-match — the
// "go " keyword also fires inside "django " — which is accepted behavior
// inherited from the keyword tables, not something this package corrects.
package category

import "strings"

// OtherLabel is the fallback label for commands matching no keyword table.
const OtherLabel = "Other"

// Category is an ordered pairing of a label with its substring keywords.
type Category struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// Language is a programming-language keyword list. A match produces the
// label "Lang: <name>".
type Language struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Tables holds the category and language keyword tables. Tables are built
// once and never mutated afterwards; a single instance is shared across all
// Categorize calls.
type Tables struct {
	Categories []Category `yaml:"categories"`
	Languages  []Language `yaml:"languages"`
}

// Categorize returns every label whose keyword list matches the command.
// The result is never empty: a command matching nothing gets OtherLabel.
// Labels follow table order, so output is deterministic for a given table.
func (t *Tables) Categorize(cmd string) []string {
	lower := strings.ToLower(cmd)

	var labels []string
	for _, cat := range t.Categories {
		if containsAny(lower, cat.Keywords) {
			labels = append(labels, cat.Label)
		}
	}
	for _, lang := range t.Languages {
		if containsAny(lower, lang.Keywords) {
			labels = append(labels, "Lang: "+lang.Name)
		}
	}

	if len(labels) == 0 {
		return []string{OtherLabel}
	}
	return labels
}

// Labels returns every label the tables can produce, in table order,
// ending with OtherLabel.
func (t *Tables) Labels() []string {
	labels := make([]string, 0, len(t.Categories)+len(t.Languages)+1)
	for _, cat := range t.Categories {
		labels = append(labels, cat.Label)
	}
	for _, lang := range t.Languages {
		labels = append(labels, "Lang: "+lang.Name)
	}
	return append(labels, OtherLabel)
}

// Counts returns the category multiset over all commands: how many times
// each label was assigned. A command with several labels contributes to
// each of them.
func (t *Tables) Counts(commands []string) map[string]int {
	counts := make(map[string]int)
	for _, cmd := range commands {
		for _, label := range t.Categorize(cmd) {
			counts[label]++
		}
	}
	return counts
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
