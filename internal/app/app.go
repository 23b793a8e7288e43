// Package app wires configuration into the pipeline components shared by the
// pipeline daemon and the digest CLI.
package app

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/internal/metrics"
	"github.com/nguyentantai21042004/speech-digest/internal/processor"
	"github.com/nguyentantai21042004/speech-digest/internal/recognizer"
	"github.com/nguyentantai21042004/speech-digest/internal/stopwords"
	"github.com/nguyentantai21042004/speech-digest/internal/summarizer"
	"github.com/nguyentantai21042004/speech-digest/internal/tokenizer"
	"github.com/nguyentantai21042004/speech-digest/internal/translator"
	"github.com/nguyentantai21042004/speech-digest/pkg/executor"
	"github.com/prometheus/client_golang/prometheus"
)

// Components holds everything built from a Config.
type Components struct {
	Tokenizer  tokenizer.Tokenizer
	Stopwords  *stopwords.Registry
	Summarizer summarizer.Summarizer
	Processor  processor.Processor
	Registry   *prometheus.Registry
}

// NewSummarizer builds the English tokenizer, the stopword registry (merged
// with stopwordsFile when set) and a summarizer using them.
func NewSummarizer(language, order, stopwordsFile string) (*tokenizer.English, *stopwords.Registry, summarizer.Summarizer, error) {
	tok, err := tokenizer.NewEnglish()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create tokenizer: %w", err)
	}

	// a private registry keeps extra words out of the process-wide default
	load := stopwords.Default
	if stopwordsFile != "" {
		load = stopwords.NewRegistry
	}
	stop, err := load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load stopwords: %w", err)
	}
	if stopwordsFile != "" {
		if err := stop.LoadFile(language, stopwordsFile); err != nil {
			return nil, nil, nil, fmt.Errorf("load stopwords file: %w", err)
		}
	}

	o, err := summarizer.ParseOrder(order)
	if err != nil {
		return nil, nil, nil, err
	}

	sum := summarizer.New(tok, stop, summarizer.WithLanguage(language), summarizer.WithOrder(o))
	return tok, stop, sum, nil
}

// Build creates every pipeline component described by cfg.
func Build(cfg *config.Config, log logger.Logger) (*Components, error) {
	tok, stop, sum, err := NewSummarizer(cfg.Summarizer.Language, cfg.Summarizer.Order, cfg.Summarizer.StopwordsFile)
	if err != nil {
		return nil, err
	}

	var trans translator.Translator = translator.Noop()
	if cfg.Gemini.Translate {
		trans, err = translator.NewGemini(translator.GeminiConfig{
			APIKeys:           cfg.Gemini.APIKeys,
			Model:             cfg.Gemini.Model,
			RequestsPerSecond: cfg.Gemini.RequestsPerSecond,
			Burst:             cfg.Gemini.Burst,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("create translator: %w", err)
		}
	}

	rec := recognizer.NewWhisper(recognizer.WhisperConfig{
		FFmpegPath:  cfg.FFmpeg.BinaryPath,
		WhisperPath: cfg.Whisper.BinaryPath,
		ModelPath:   cfg.Whisper.ModelPath,
		Language:    cfg.Whisper.Language,
		Prompt:      cfg.Whisper.Prompt,
		Threads:     cfg.Whisper.Threads,
		TempDir:     cfg.Paths.Temp,
	}, executor.New(), log)

	reg := prometheus.NewRegistry()
	var recorder metrics.Recorder = metrics.Noop()
	if cfg.Metrics.Enabled {
		recorder = metrics.NewPrometheus(reg)
	}

	proc := processor.New(cfg, processor.Dependencies{
		Summarizer: sum,
		Tokenizer:  tok,
		Tagger:     tok,
		Recognizer: rec,
		Translator: trans,
		Metrics:    recorder,
		Logger:     log,
	})

	return &Components{
		Tokenizer:  tok,
		Stopwords:  stop,
		Summarizer: sum,
		Processor:  proc,
		Registry:   reg,
	}, nil
}

// EnsureDirectories creates the working directories if they don't exist.
func EnsureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
