package analyze

import "unicode/utf8"

// CountMistypes counts commands that look like one-off typos: an occurrence
// whose total frequency is exactly 1 and that has no sufficiently similar
// sibling among all distinct commands. Commands seen two or more times are
// assumed intentional and never flagged.
//
// The scan is O(U²) in the number of distinct commands, with the per-pair
// cost bounded by the Distance fast rejects. That is fine for interactive
// history sizes (hundreds to low thousands of distinct commands); it is not
// meant to scale beyond that.
func CountMistypes(commands []string, freq map[string]int) int {
	count := 0
	for _, cmd := range commands {
		if freq[cmd] != 1 {
			continue
		}
		if !hasSimilarSibling(cmd, freq) {
			count++
		}
	}
	return count
}

// hasSimilarSibling reports whether any other distinct command lies within
// the edit-distance similarity threshold of cmd. Pairs whose rune lengths
// differ by more than maxLengthGap are rejected before invoking Distance,
// mirroring its own length short-circuit.
func hasSimilarSibling(cmd string, freq map[string]int) bool {
	cmdLen := utf8.RuneCountInString(cmd)

	for other := range freq {
		if other == cmd {
			continue
		}

		otherLen := utf8.RuneCountInString(other)
		gap := cmdLen - otherLen
		if gap < 0 {
			gap = -gap
		}
		if gap > maxLengthGap {
			continue
		}

		maxLen := cmdLen
		if otherLen > maxLen {
			maxLen = otherLen
		}
		if Distance(cmd, other) <= similarityThreshold(maxLen) {
			return true
		}
	}

	return false
}
