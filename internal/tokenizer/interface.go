package tokenizer

// Tokenizer splits text into sentences and into word tokens. The two
// operations are independent: Words does not assume its input is a sentence
// produced by Sentences.
type Tokenizer interface {
	Sentences(text string) []string
	Words(text string) []string
}

// TaggedToken is a word token with its Penn Treebank part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tagger assigns part-of-speech tags to the word tokens of text.
type Tagger interface {
	Tag(text string) []TaggedToken
}
