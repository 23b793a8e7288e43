package summarizer

import (
	"strings"

	"github.com/nguyentantai21042004/speech-digest/internal/tokenizer"
)

// Summarize implements Summarizer.
func (s *implSummarizer) Summarize(text string, sentenceCount int) string {
	return strings.Join(s.Select(text, sentenceCount), " ")
}

// Select implements Summarizer.
func (s *implSummarizer) Select(text string, sentenceCount int) []string {
	if sentenceCount <= 0 {
		return nil
	}

	top := s.Analyze(text).Top(sentenceCount, s.order)
	if len(top) == 0 {
		return nil
	}

	out := make([]string, len(top))
	for i, sc := range top {
		out[i] = sc.Sentence
	}
	return out
}

// Analyze implements Summarizer.
func (s *implSummarizer) Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Frequencies: map[string]int{}}
	}

	freq := s.wordFrequencies(text)
	return Result{
		Frequencies: freq,
		Sentences:   s.scoreSentences(s.tokenizer.Sentences(text), freq),
	}
}

// wordFrequencies counts case-folded non-stopwords of the whole document
// after punctuation has been stripped.
func (s *implSummarizer) wordFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range strings.Fields(tokenizer.StripPunctuation(text)) {
		w = strings.ToLower(w)
		if s.stopwords.Contains(w, s.language) {
			continue
		}
		freq[w]++
	}
	return freq
}

// scoreSentences sums table entries over each sentence's own word tokens.
// The sentence tokens are not punctuation-stripped, so a token like "n't"
// never matches. Repeated sentences share the slot of their first occurrence
// and accumulate.
func (s *implSummarizer) scoreSentences(sentences []string, freq map[string]int) []SentenceScore {
	slots := make(map[string]int, len(sentences))
	scores := make([]SentenceScore, 0, len(sentences))

	for _, sent := range sentences {
		score := 0
		for _, tok := range s.tokenizer.Words(sent) {
			score += freq[strings.ToLower(tok)]
		}

		if i, ok := slots[sent]; ok {
			scores[i].Score += score
			continue
		}
		slots[sent] = len(scores)
		scores = append(scores, SentenceScore{
			Index:    len(scores),
			Sentence: sent,
			Score:    score,
		})
	}
	return scores
}
