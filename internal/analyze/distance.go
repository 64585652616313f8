// Package analyze computes aggregate statistics and mistype heuristics over
// tokenized shell history.
package analyze

// maxLengthGap is the rune-length difference beyond which two commands are
// considered trivially dissimilar and the edit-distance DP is skipped.
const maxLengthGap = 5

// similarityThreshold returns ceil(0.3 * maxLen), the largest edit distance
// at which two commands of the given maximum length still count as similar.
func similarityThreshold(maxLen int) int {
	return (3*maxLen + 9) / 10
}

// Distance computes the Levenshtein edit distance between two strings over
// their rune sequences, with two fast-reject approximations:
//
//   - when the rune lengths differ by more than maxLengthGap, the length
//     difference is returned without running the DP;
//   - after each DP row, if the row minimum already exceeds
//     similarityThreshold(max length), that minimum is returned.
//
// In both early-exit cases the result is not the true distance — only the
// guarantee that it exceeds the similarity threshold holds. Callers compare
// the result against similarityThreshold and must not rely on the exact
// magnitude beyond it.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	gap := len(ra) - len(rb)
	if gap < 0 {
		gap = -gap
	}
	if gap > maxLengthGap {
		return gap
	}

	// Keep the shorter string on the row axis so the two rows stay small.
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	limit := similarityThreshold(len(ra))

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		rowMin := curr[0]

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			d := prev[j] + 1 // deletion
			if ins := curr[j-1] + 1; ins < d {
				d = ins
			}
			if sub := prev[j-1] + cost; sub < d {
				d = sub
			}
			curr[j] = d

			if d < rowMin {
				rowMin = d
			}
		}

		if rowMin > limit {
			return rowMin
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
