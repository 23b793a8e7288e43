package recognizer

import (
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/pkg/executor"
)

// WhisperConfig configures the ffmpeg + whisper.cpp backend.
type WhisperConfig struct {
	FFmpegPath  string
	WhisperPath string
	ModelPath   string
	Language    string
	Prompt      string
	Threads     int
	TempDir     string
}

type implWhisper struct {
	cfg      WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisper creates a Recognizer that shells out to ffmpeg and whisper.cpp
func NewWhisper(cfg WhisperConfig, exec executor.Executor, log logger.Logger) Recognizer {
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = "ffmpeg"
	}
	if cfg.Language == "" {
		cfg.Language = "auto"
	}
	if cfg.Threads <= 0 {
		cfg.Threads = 4
	}
	return &implWhisper{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
