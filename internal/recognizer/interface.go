package recognizer

import "context"

// Recognizer turns an audio file into plain text.
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string) (string, error)
}
