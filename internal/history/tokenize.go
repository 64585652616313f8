// Package history provides shell history acquisition and tokenization.
package history

import (
	"regexp"
	"strings"
)

var (
	// indexPrefixRegex matches numbered history output: "  123  command"
	indexPrefixRegex = regexp.MustCompile(`^\s*\d+\s+`)

	// timestampRegex matches bare bash timestamp markers: "#1616420000"
	timestampRegex = regexp.MustCompile(`^#\d+`)

	// tokenRegex matches a maximal run of non-whitespace, non-comma
	// characters, or a double-quoted run that may contain escapes.
	tokenRegex = regexp.MustCompile(`(?:[^\s,"]|"(?:\\.|[^"])*")+`)
)

// Tokenize splits raw history text into an ordered list of commands and an
// ordered list of normalized word tokens extracted from them.
//
// Three line formats are recognized:
//   - numbered history output: "  123  git status"
//   - bash timestamp markers: "#1616420000" (the line is discarded)
//   - zsh extended history: ": 1616420000:0;git status"
//
// Anything else is taken verbatim. Blank lines are dropped. A numbered line
// with no text after the index still contributes an empty command, so callers
// must tolerate empty entries.
func Tokenize(raw string) (commands []string, words []string) {
	if raw == "" {
		return nil, nil
	}

	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cmd, ok := normalizeLine(line)
		if !ok {
			continue
		}
		commands = append(commands, strings.TrimSpace(cmd))
	}

	for _, cmd := range commands {
		words = append(words, Words(cmd)...)
	}

	return commands, words
}

// normalizeLine strips history-format decoration from a single line.
// The second return value is false when the line carries no command at all
// (timestamp markers, malformed extended-history entries).
func normalizeLine(line string) (string, bool) {
	if indexPrefixRegex.MatchString(line) {
		return indexPrefixRegex.ReplaceAllString(line, ""), true
	}

	if timestampRegex.MatchString(line) {
		return "", false
	}

	if strings.HasPrefix(line, ":") && strings.Contains(line, ";") {
		// Extended format ": <epoch>:<flag>;<command>". The command is
		// whatever follows the metadata fields; a lone ";" terminator
		// with nothing after it yields an empty command, which is kept.
		parts := strings.SplitN(line, ";", 3)
		return parts[len(parts)-1], true
	}

	return line, true
}

// Words extracts normalized word tokens from a single command. Tokens are
// lowercased and stripped of surrounding quotes; flag-like tokens (leading
// "-"), empty tokens, and purely numeric tokens are dropped. A double-quoted
// phrase is kept as a single token.
func Words(cmd string) []string {
	var words []string
	for _, token := range tokenRegex.FindAllString(cmd, -1) {
		if strings.HasPrefix(token, "-") {
			continue
		}
		cleaned := strings.ToLower(strings.Trim(token, `"'`))
		if cleaned == "" || isNumeric(cleaned) {
			continue
		}
		words = append(words, cleaned)
	}
	return words
}

// isNumeric reports whether s consists entirely of ASCII digits.
func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
