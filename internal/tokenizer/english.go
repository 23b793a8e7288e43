package tokenizer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

type sentenceSplitter interface {
	Tokenize(text string) []*sentences.Sentence
}

// English tokenizes English text. Sentence boundaries come from the trained
// Punkt model; words and tags come from the prose Treebank tokenizer and
// perceptron tagger.
type English struct {
	splitter sentenceSplitter
}

// NewEnglish loads the English Punkt model.
func NewEnglish() (*English, error) {
	st, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load english sentence model: %w", err)
	}
	return &English{splitter: st}, nil
}

// Sentences returns the trimmed, non-empty sentences of text in order.
func (e *English) Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []string
	for _, s := range e.splitter.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Words returns the Treebank word tokens of text: punctuation is split off
// and English clitics become their own tokens ("do", "n't").
func (e *English) Words(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return strings.Fields(text)
	}

	toks := doc.Tokens()
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Text)
	}
	return out
}

// Tag returns the word tokens of text with their part-of-speech tags.
func (e *English) Tag(text string) []TaggedToken {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil
	}

	toks := doc.Tokens()
	out := make([]TaggedToken, 0, len(toks))
	for _, t := range toks {
		out = append(out, TaggedToken{Text: t.Text, Tag: t.Tag})
	}
	return out
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// IsPunctuationToken reports whether tok consists only of punctuation or symbols.
func IsPunctuationToken(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !isPunct(r) {
			return false
		}
	}
	return true
}
