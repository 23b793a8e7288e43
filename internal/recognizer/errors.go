package recognizer

import (
	"errors"
	"fmt"
)

var (
	// ErrRecognitionUnavailable means the audio held no recognizable speech.
	ErrRecognitionUnavailable = errors.New("speech not recognized")
	// ErrRequestFailed means the recognition backend could not be run or failed.
	ErrRequestFailed = errors.New("recognition request failed")
	// ErrUnknownFailure covers every other failure.
	ErrUnknownFailure = errors.New("unknown recognition failure")
)

// Message maps a Recognize error to the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRecognitionUnavailable):
		return "Unable to recognize speech. Make sure your data doesn't include background music."
	case errors.Is(err, ErrRequestFailed):
		return fmt.Sprintf("An error occurred during speech recognition: %v", err)
	default:
		return fmt.Sprintf("An unexpected error occurred during speech recognition: %v", err)
	}
}
