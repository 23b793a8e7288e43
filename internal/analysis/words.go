package analysis

import (
	"sort"
	"strings"

	"github.com/nguyentantai21042004/speech-digest/internal/tokenizer"
)

// WordCount is one row of a word-frequency listing.
type WordCount struct {
	Word  string
	Count int
}

// WordCounts counts case-folded word tokens of text. Punctuation-only tokens
// are skipped; stopwords are not.
func WordCounts(tok tokenizer.Tokenizer, text string) map[string]int {
	counts := make(map[string]int)
	if strings.TrimSpace(text) == "" {
		return counts
	}
	for _, w := range tok.Words(text) {
		if tokenizer.IsPunctuationToken(w) {
			continue
		}
		counts[strings.ToLower(w)]++
	}
	return counts
}

// Top returns the entries with count >= threshold, most frequent first and
// alphabetical among equals. It serves POSCounts maps as well.
func Top(counts map[string]int, threshold int) []WordCount {
	out := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		if c >= threshold {
			out = append(out, WordCount{Word: w, Count: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// MaxCount is the largest count in counts, 0 when empty.
func MaxCount(counts map[string]int) int {
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return max
}
