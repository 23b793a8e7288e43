package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing paths",
			config: Config{
				Paths: PathsConfig{},
			},
			wantErr: true,
		},
		{
			name: "whisper binary without model",
			config: Config{
				Whisper: WhisperConfig{BinaryPath: "./whisper"},
				Paths:   PathsConfig{Input: "in", Output: "out"},
			},
			wantErr: true,
		},
		{
			name: "unknown order",
			config: Config{
				Summarizer: SummarizerConfig{Order: "random"},
				Paths:      PathsConfig{Input: "in", Output: "out"},
			},
			wantErr: true,
		},
		{
			name: "negative sentences",
			config: Config{
				Summarizer: SummarizerConfig{Sentences: -1},
				Paths:      PathsConfig{Input: "in", Output: "out"},
			},
			wantErr: true,
		},
		{
			name: "translate without keys",
			config: Config{
				Gemini: GeminiConfig{Translate: true},
				Paths:  PathsConfig{Input: "in", Output: "out"},
			},
			wantErr: true,
		},
		{
			name: "translate with keys",
			config: Config{
				Gemini: GeminiConfig{Translate: true, APIKeys: []string{"k1"}},
				Paths:  PathsConfig{Input: "in", Output: "out"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Paths: PathsConfig{Input: "in", Output: "out"}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	if cfg.Summarizer.Sentences != 1 {
		t.Errorf("Sentences = %d, want 1", cfg.Summarizer.Sentences)
	}
	if cfg.Summarizer.Language != "english" {
		t.Errorf("Language = %q, want english", cfg.Summarizer.Language)
	}
	if cfg.Summarizer.Order != "score" {
		t.Errorf("Order = %q, want score", cfg.Summarizer.Order)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d, want 2", cfg.Performance.MaxConcurrent)
	}
	if cfg.Gemini.TargetLanguage != "en" {
		t.Errorf("TargetLanguage = %q, want en", cfg.Gemini.TargetLanguage)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
summarizer:
  sentences: 3
  order: "position"

whisper:
  model_path: "models/test.bin"
  binary_path: "./whisper"
  language: "en"

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "debug"
`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvGeminiAPIKeys, "key-a, key-b,,")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Summarizer.Sentences != 3 {
		t.Errorf("Sentences = %v, want %v", cfg.Summarizer.Sentences, 3)
	}
	if cfg.Summarizer.Order != "position" {
		t.Errorf("Order = %v, want %v", cfg.Summarizer.Order, "position")
	}
	if cfg.Whisper.ModelPath != "models/test.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/test.bin")
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[1] != "key-b" {
		t.Errorf("APIKeys = %v, want [key-a key-b]", cfg.Gemini.APIKeys)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("paths: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for malformed YAML")
	}
}
