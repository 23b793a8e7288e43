package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/speech-digest/internal/stopwords"
	"github.com/nguyentantai21042004/speech-digest/internal/tokenizer"
)

// DefaultLanguage is the stopword language used when none is configured.
const DefaultLanguage = "english"

// Order controls how the selected sentences are arranged in the summary.
type Order int

const (
	// OrderByScore emits sentences from highest to lowest score.
	OrderByScore Order = iota
	// OrderByPosition emits the selected sentences in document order.
	OrderByPosition
)

func (o Order) String() string {
	if o == OrderByPosition {
		return "position"
	}
	return "score"
}

// ParseOrder maps "score" or "position" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "score":
		return OrderByScore, nil
	case "position":
		return OrderByPosition, nil
	}
	return OrderByScore, fmt.Errorf("unknown summary order %q", s)
}

type implSummarizer struct {
	tokenizer tokenizer.Tokenizer
	stopwords stopwords.Set
	language  string
	order     Order
}

type Option func(*implSummarizer)

// WithLanguage sets the stopword language.
func WithLanguage(language string) Option {
	return func(s *implSummarizer) {
		if language != "" {
			s.language = language
		}
	}
}

// WithOrder sets the output order of selected sentences.
func WithOrder(order Order) Option {
	return func(s *implSummarizer) {
		s.order = order
	}
}

// New creates a Summarizer over the given collaborators. The returned value
// holds no per-call state and is safe for concurrent use.
func New(tok tokenizer.Tokenizer, stop stopwords.Set, opts ...Option) Summarizer {
	s := &implSummarizer{
		tokenizer: tok,
		stopwords: stop,
		language:  DefaultLanguage,
		order:     OrderByScore,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
