package recognizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/pkg/executor"
)

type fakeExecutor struct {
	missing    map[string]bool
	fail       map[string]error
	transcript string
	calls      []string
}

func (f *fakeExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name)
	if err := f.fail[name]; err != nil {
		return "", err
	}
	for i, a := range args {
		if a == "--output-file" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1]+".txt", []byte(f.transcript), 0644); err != nil {
				return "", err
			}
		}
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, _ string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", fmt.Errorf("%w: %s", executor.ErrNotFound, name)
	}
	return name, nil
}

func newTestRecognizer(t *testing.T, exec executor.Executor) Recognizer {
	t.Helper()
	model := filepath.Join(t.TempDir(), "model.bin")
	if err := os.WriteFile(model, []byte("model"), 0644); err != nil {
		t.Fatal(err)
	}
	return NewWhisper(WhisperConfig{
		WhisperPath: "whisper-cli",
		ModelPath:   model,
		TempDir:     t.TempDir(),
	}, exec, logger.Nop())
}

func TestRecognize(t *testing.T) {
	exec := &fakeExecutor{transcript: " Hello there.\n General Kenobi. \n"}
	r := newTestRecognizer(t, exec)

	text, err := r.Recognize(context.Background(), "input.wav")
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if text != "Hello there. General Kenobi." {
		t.Errorf("Recognize() = %q", text)
	}
	if strings.Join(exec.calls, ",") != "ffmpeg,whisper-cli" {
		t.Errorf("calls = %v, want ffmpeg then whisper-cli", exec.calls)
	}
}

func TestRecognizeErrors(t *testing.T) {
	tests := []struct {
		name string
		exec *fakeExecutor
		want error
	}{
		{
			name: "empty transcript",
			exec: &fakeExecutor{transcript: "  \n"},
			want: ErrRecognitionUnavailable,
		},
		{
			name: "whisper missing",
			exec: &fakeExecutor{missing: map[string]bool{"whisper-cli": true}},
			want: ErrRequestFailed,
		},
		{
			name: "ffmpeg fails",
			exec: &fakeExecutor{fail: map[string]error{"ffmpeg": errors.New("exit status 1")}},
			want: ErrRequestFailed,
		},
		{
			name: "whisper fails",
			exec: &fakeExecutor{fail: map[string]error{"whisper-cli": errors.New("exit status 2")}},
			want: ErrRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecognizer(t, tt.exec)
			_, err := r.Recognize(context.Background(), "input.wav")
			if !errors.Is(err, tt.want) {
				t.Errorf("Recognize() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRecognizeNotConfigured(t *testing.T) {
	r := NewWhisper(WhisperConfig{}, &fakeExecutor{}, logger.Nop())
	if _, err := r.Recognize(context.Background(), "a.wav"); !errors.Is(err, ErrRequestFailed) {
		t.Errorf("Recognize() error = %v, want ErrRequestFailed", err)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err    error
		prefix string
	}{
		{nil, ""},
		{ErrRecognitionUnavailable, "Unable to recognize speech."},
		{fmt.Errorf("%w: boom", ErrRequestFailed), "An error occurred during speech recognition:"},
		{errors.New("disk on fire"), "An unexpected error occurred during speech recognition:"},
	}
	for _, tt := range tests {
		if got := Message(tt.err); !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("Message(%v) = %q, want prefix %q", tt.err, got, tt.prefix)
		}
	}
}
