package tokenizer

import "strings"

// asciiPunctuation is the ASCII punctuation set removed by StripPunctuation.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// StripPunctuation deletes every ASCII punctuation character from text.
// Non-ASCII punctuation (curly quotes, dashes) is kept.
func StripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, text)
}
