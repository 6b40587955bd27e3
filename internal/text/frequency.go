package text

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Frequency maps a normalized word to the number of times it occurred.
// It never holds the empty word and every count is at least 1.
type Frequency map[string]int

// WordCount is a single entry of a ranked Frequency.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordFrequency counts the words of text.
//
// Text is split on runs of white space. Each token is lowercased using full
// Unicode case mapping and then stripped of leading and trailing runes that
// are neither letters nor digits; interior punctuation such as the
// apostrophe in "don't" is kept. Tokens left empty by trimming are dropped.
func WordFrequency(text string) Frequency {
	// Casers carry state and are not safe to share, so build one per call.
	lower := cases.Lower(language.Und)

	freq := make(Frequency)
	for _, token := range strings.Fields(text) {
		word := strings.TrimFunc(lower.String(token), func(r rune) bool {
			return !isAlphanumeric(r)
		})
		if word == "" {
			continue
		}
		freq[word]++
	}
	return freq
}

// Total returns the number of counted word occurrences.
func (f Frequency) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// Top ranks the entries by count, highest first, breaking ties
// alphabetically. When n is positive at most n entries are returned.
func (f Frequency) Top(n int) []WordCount {
	ranked := make([]WordCount, 0, len(f))
	for word, count := range f {
		ranked = append(ranked, WordCount{Word: word, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
