package translator

import "context"

// Translator renders text in a target language (ISO 639-1 code, e.g. "en").
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
