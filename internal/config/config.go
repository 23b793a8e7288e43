package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvGeminiAPIKeys holds a comma-separated list of Gemini API keys.
const EnvGeminiAPIKeys = "GEMINI_API_KEYS"

type Config struct {
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type SummarizerConfig struct {
	Sentences     int    `yaml:"sentences"`
	Language      string `yaml:"language"`
	Order         string `yaml:"order"`
	StopwordsFile string `yaml:"stopwords_file"`
	MinWordCount  int    `yaml:"min_word_count"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	Model             string   `yaml:"model"`
	Translate         bool     `yaml:"translate"`
	TargetLanguage    string   `yaml:"target_language"`
	RequestsPerSecond float64  `yaml:"requests_per_second"`
	Burst             int      `yaml:"burst"`
	APIKeys           []string `yaml:"-"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads the YAML file at path, picks up secrets from the environment
// (and a .env file when present) and validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Gemini.APIKeys = splitKeys(os.Getenv(EnvGeminiAPIKeys))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Validate checks required fields and fills defaults in place.
func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Summarizer.Sentences < 0 {
		return fmt.Errorf("summarizer.sentences must not be negative")
	}
	switch c.Summarizer.Order {
	case "":
		c.Summarizer.Order = "score"
	case "score", "position":
	default:
		return fmt.Errorf("summarizer.order must be score or position, got %q", c.Summarizer.Order)
	}
	if c.Whisper.BinaryPath != "" && c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required when whisper.binary_path is set")
	}
	if c.Gemini.Translate && len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.translate needs %s to be set", EnvGeminiAPIKeys)
	}

	if c.Summarizer.Sentences == 0 {
		c.Summarizer.Sentences = 1
	}
	if c.Summarizer.Language == "" {
		c.Summarizer.Language = "english"
	}
	if c.Summarizer.MinWordCount == 0 {
		c.Summarizer.MinWordCount = 1
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.TargetLanguage == "" {
		c.Gemini.TargetLanguage = "en"
	}
	if c.Gemini.RequestsPerSecond == 0 {
		c.Gemini.RequestsPerSecond = 1
	}
	if c.Gemini.Burst == 0 {
		c.Gemini.Burst = 2
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9090"
	}

	return nil
}
