// Package search provides pattern and substring retrieval over commands,
// keywords, and category labels.
//
// Pattern searches take a regular expression; unless case-sensitive matching
// is requested the pattern is compiled with an inline (?i) flag. A malformed
// pattern is never an error — it simply matches nothing, so the caller
// observes zero results.
package search

import (
	"regexp"
	"strings"

	"github.com/chazuruo/past/internal/category"
)

// compile returns the compiled pattern, or nil when the pattern is invalid.
func compile(pattern string, caseSensitive bool) *regexp.Regexp {
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return re
}

// Commands returns the commands matching the pattern, order preserved,
// duplicates kept.
func Commands(commands []string, pattern string, caseSensitive bool) []string {
	re := compile(pattern, caseSensitive)
	if re == nil {
		return nil
	}

	var results []string
	for _, cmd := range commands {
		if re.MatchString(cmd) {
			results = append(results, cmd)
		}
	}
	return results
}

// Words returns the distinct words matching the pattern, in first-seen order.
func Words(words []string, pattern string, caseSensitive bool) []string {
	re := compile(pattern, caseSensitive)
	if re == nil {
		return nil
	}

	seen := make(map[string]bool)
	var results []string
	for _, word := range words {
		if seen[word] || !re.MatchString(word) {
			continue
		}
		seen[word] = true
		results = append(results, word)
	}
	return results
}

// ByCategory matches the pattern against category labels. It returns the
// commands holding at least one matching label, and the matching labels
// observed across the command set. Labels are re-derived per command via the
// categorizer; a command matches if any of its labels does.
func ByCategory(commands []string, tables *category.Tables, pattern string, caseSensitive bool) (matchedCommands, matchedCategories []string) {
	re := compile(pattern, caseSensitive)
	if re == nil {
		return nil, nil
	}

	counts := tables.Counts(commands)
	for _, label := range tables.Labels() {
		if counts[label] > 0 && re.MatchString(label) {
			matchedCategories = append(matchedCategories, label)
		}
	}

	for _, cmd := range commands {
		for _, label := range tables.Categorize(cmd) {
			if re.MatchString(label) {
				matchedCommands = append(matchedCommands, cmd)
				break
			}
		}
	}

	return matchedCommands, matchedCategories
}

// Filter returns the candidates whose lowercase form contains the lowercase
// query, preserving relative order. An empty query matches everything. This
// is the primitive behind the interactive picker.
func Filter(candidates []string, query string) []string {
	if query == "" {
		return candidates
	}

	lower := strings.ToLower(query)
	var results []string
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), lower) {
			results = append(results, c)
		}
	}
	return results
}
