package analysis

import "github.com/nguyentantai21042004/speech-digest/internal/tokenizer"

// UnknownPOS names any tag missing from posNames.
const UnknownPOS = "Unknown POS"

var posNames = map[string]string{
	"CC":   "Coordinating conjunction",
	"CD":   "Cardinal number",
	"DT":   "Determiner",
	"EX":   "Existential there",
	"FW":   "Foreign word",
	"IN":   "Preposition or subordinating conjunction",
	"JJ":   "Adjective",
	"JJR":  "Adjective, comparative",
	"JJS":  "Adjective, superlative",
	"LS":   "List item marker",
	"MD":   "Modal",
	"NN":   "Noun, singular or mass",
	"NNS":  "Noun, plural",
	"NNP":  "Proper noun, singular",
	"NNPS": "Proper noun, plural",
	"PDT":  "Predeterminer",
	"POS":  "Possessive ending",
	"PRP":  "Personal pronoun",
	"PRP$": "Possessive pronoun",
	"RB":   "Adverb",
	"RBR":  "Adverb, comparative",
	"RBS":  "Adverb, superlative",
	"RP":   "Particle",
	"SYM":  "Symbol",
	"TO":   "to",
	"UH":   "Interjection",
	"VB":   "Verb, base form",
	"VBD":  "Verb, past tense",
	"VBG":  "Verb, gerund or present participle",
	"VBN":  "Verb, past participle",
	"VBP":  "Verb, non-3rd person singular present",
	"VBZ":  "Verb, 3rd person singular present",
	"WDT":  "Wh-determiner",
	"WP":   "Wh-pronoun",
	"WP$":  "Possessive wh-pronoun",
	"WRB":  "Wh-adverb",
}

// POSName returns the full name of a Penn Treebank tag, or UnknownPOS.
func POSName(tag string) string {
	if name, ok := posNames[tag]; ok {
		return name
	}
	return UnknownPOS
}

// POSCounts counts the word tokens of text by the full name of their
// part-of-speech tag. Punctuation tokens are not counted.
func POSCounts(tg tokenizer.Tagger, text string) map[string]int {
	counts := make(map[string]int)
	for _, t := range tg.Tag(text) {
		if tokenizer.IsPunctuationToken(t.Text) {
			continue
		}
		counts[POSName(t.Tag)]++
	}
	return counts
}
