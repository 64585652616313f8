package analyze

import "sort"

// Counted pairs a value with its occurrence count.
type Counted struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Summary holds the aggregate statistics for one analysis run.
type Summary struct {
	TotalCommands  int
	UniqueCommands int
	TotalWords     int
	UniqueWords    int
	Mistypes       int
}

// CommandVariety returns the unique/total command ratio. The second return
// value is false when there are no commands (0/0 is undefined, not zero).
func (s Summary) CommandVariety() (float64, bool) {
	return variety(s.UniqueCommands, s.TotalCommands)
}

// WordVariety returns the unique/total keyword ratio, false when undefined.
func (s Summary) WordVariety() (float64, bool) {
	return variety(s.UniqueWords, s.TotalWords)
}

func variety(unique, total int) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	return float64(unique) / float64(total), true
}

// Frequencies returns the occurrence count of every distinct value.
func Frequencies(values []string) map[string]int {
	freq := make(map[string]int, len(values))
	for _, v := range values {
		freq[v]++
	}
	return freq
}

// TopN returns the n most frequent entries, count descending. Ties break
// lexicographically so output is deterministic. n <= 0 returns everything.
func TopN(freq map[string]int, n int) []Counted {
	counted := make([]Counted, 0, len(freq))
	for v, c := range freq {
		counted = append(counted, Counted{Value: v, Count: c})
	}

	sort.Slice(counted, func(i, j int) bool {
		if counted[i].Count != counted[j].Count {
			return counted[i].Count > counted[j].Count
		}
		return counted[i].Value < counted[j].Value
	})

	if n > 0 && len(counted) > n {
		counted = counted[:n]
	}
	return counted
}

// Summarize computes the summary statistics for a tokenized history.
// The mistype scan is quadratic in distinct commands, so callers can skip it.
func Summarize(commands, words []string, countMistypes bool) Summary {
	cmdFreq := Frequencies(commands)
	wordFreq := Frequencies(words)

	sum := Summary{
		TotalCommands:  len(commands),
		UniqueCommands: len(cmdFreq),
		TotalWords:     len(words),
		UniqueWords:    len(wordFreq),
	}
	if countMistypes {
		sum.Mistypes = CountMistypes(commands, cmdFreq)
	}
	return sum
}
