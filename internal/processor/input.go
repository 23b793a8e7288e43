package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/speech-digest/internal/recognizer"
)

const (
	sourceText  = "text"
	sourceAudio = "audio"
)

var extensionKinds = map[string]string{
	".txt":  sourceText,
	".md":   sourceText,
	".wav":  sourceAudio,
	".mp3":  sourceAudio,
	".m4a":  sourceAudio,
	".flac": sourceAudio,
	".ogg":  sourceAudio,
}

// SupportedExtensions lists the lower-case extensions the pipeline accepts.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensionKinds))
	for ext := range extensionKinds {
		exts = append(exts, ext)
	}
	return exts
}

// IsSupported reports whether path has an accepted extension.
func IsSupported(path string) bool {
	return sourceKind(path) != ""
}

func sourceKind(path string) string {
	return extensionKinds[strings.ToLower(filepath.Ext(path))]
}

// readInput returns the plain text of a text file or the transcript of an audio file.
func (p *implProcessor) readInput(ctx context.Context, path, kind string) (string, error) {
	if kind == sourceText {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read text: %w", err)
		}
		return string(data), nil
	}

	text, err := p.recognizer.Recognize(ctx, path)
	if err != nil {
		p.metrics.RecordRecognitionFailure(recognitionKind(err))
		p.logger.Error(ctx, "%s", recognizer.Message(err))
		return "", fmt.Errorf("recognize speech: %w", err)
	}
	return text, nil
}

func recognitionKind(err error) string {
	switch {
	case errors.Is(err, recognizer.ErrRecognitionUnavailable):
		return "unavailable"
	case errors.Is(err, recognizer.ErrRequestFailed):
		return "request_failed"
	default:
		return "unknown"
	}
}

// translate returns text in the configured target language, or text itself
// when translation fails.
func (p *implProcessor) translate(ctx context.Context, text string) string {
	translated, err := p.translator.Translate(ctx, text, p.cfg.Gemini.TargetLanguage)
	if err != nil {
		p.metrics.RecordTranslationFailure()
		p.logger.Warn(ctx, "Translation failed, using original text: %v", err)
		return text
	}
	return translated
}
