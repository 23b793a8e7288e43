package recognizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Recognize converts the input to 16kHz mono WAV and transcribes it to plain text.
func (w *implWhisper) Recognize(ctx context.Context, audioPath string) (string, error) {
	if err := w.checkBackend(); err != nil {
		return "", err
	}

	if w.cfg.TempDir != "" {
		if err := os.MkdirAll(w.cfg.TempDir, 0755); err != nil {
			return "", fmt.Errorf("%w: create temp dir: %v", ErrUnknownFailure, err)
		}
	}
	workDir, err := os.MkdirTemp(w.cfg.TempDir, "recognize-*")
	if err != nil {
		return "", fmt.Errorf("%w: create work dir: %v", ErrUnknownFailure, err)
	}
	defer os.RemoveAll(workDir)

	wavPath, err := w.extractAudio(ctx, audioPath, workDir)
	if err != nil {
		return "", err
	}

	return w.transcribe(ctx, wavPath)
}

func (w *implWhisper) checkBackend() error {
	if w.cfg.WhisperPath == "" {
		return fmt.Errorf("%w: whisper binary not configured", ErrRequestFailed)
	}
	if _, err := w.executor.LookPath(w.cfg.FFmpegPath); err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if _, err := w.executor.LookPath(w.cfg.WhisperPath); err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if _, err := os.Stat(w.cfg.ModelPath); err != nil {
		return fmt.Errorf("%w: whisper model: %v", ErrRequestFailed, err)
	}
	return nil
}

// extractAudio writes a 16kHz mono PCM WAV, the input format whisper.cpp expects.
func (w *implWhisper) extractAudio(ctx context.Context, audioPath, workDir string) (string, error) {
	wavPath := filepath.Join(workDir, "audio.wav")

	w.logger.Debug(ctx, "Converting audio: %s -> %s", audioPath, wavPath)

	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}
	if _, err := w.executor.Execute(ctx, w.cfg.FFmpegPath, args...); err != nil {
		return "", fmt.Errorf("%w: ffmpeg convert: %v", ErrRequestFailed, err)
	}
	return wavPath, nil
}

func (w *implWhisper) transcribe(ctx context.Context, wavPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))

	w.logger.Info(ctx, "Transcribing with %d threads: %s", w.cfg.Threads, wavPath)

	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	if _, err := w.executor.Execute(ctx, w.cfg.WhisperPath, args...); err != nil {
		return "", fmt.Errorf("%w: whisper: %v", ErrRequestFailed, err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("%w: read transcript: %v", ErrUnknownFailure, err)
	}

	text := strings.Join(strings.Fields(string(data)), " ")
	if text == "" {
		return "", ErrRecognitionUnavailable
	}
	return text, nil
}
