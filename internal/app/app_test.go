package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/internal/stopwords"
)

func TestNewSummarizerStopwordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.txt")
	if err := os.WriteFile(path, []byte("# domain words\npets\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, stop, sum, err := NewSummarizer("english", "score", path)
	if err != nil {
		t.Fatalf("NewSummarizer() error = %v", err)
	}
	if !stop.Contains("pets", "english") {
		t.Error("extra stopword not loaded")
	}

	def, err := stopwords.Default()
	if err != nil {
		t.Fatal(err)
	}
	if def.Contains("pets", "english") {
		t.Error("extra stopword leaked into the default registry")
	}

	got := sum.Summarize("Cats are great. Dogs are loyal. Cats and dogs are pets.", 1)
	if got != "Cats and dogs are pets." {
		t.Errorf("Summarize() = %q", got)
	}
}

func TestNewSummarizerBadOrder(t *testing.T) {
	if _, _, _, err := NewSummarizer("english", "random", ""); err == nil {
		t.Error("NewSummarizer() should reject an unknown order")
	}
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Paths.Input = filepath.Join(dir, "in")
	cfg.Paths.Output = filepath.Join(dir, "out")
	cfg.Paths.Archived = filepath.Join(dir, "archived")
	cfg.Paths.Temp = filepath.Join(dir, "tmp")
	cfg.Metrics.Enabled = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	if err := EnsureDirectories(cfg); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}
	for _, d := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived, cfg.Paths.Temp} {
		if info, err := os.Stat(d); err != nil || !info.IsDir() {
			t.Errorf("directory %s not created", d)
		}
	}

	c, err := Build(cfg, logger.Nop())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if c.Processor == nil || c.Summarizer == nil || c.Registry == nil {
		t.Fatal("Build() returned incomplete components")
	}

	input := filepath.Join(cfg.Paths.Input, "note.txt")
	if err := os.WriteFile(input, []byte("Cats are great. Dogs are loyal. Cats and dogs are pets."), 0644); err != nil {
		t.Fatal(err)
	}
	if err := c.Processor.Process(t.Context(), input); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Output, "note.md")); err != nil {
		t.Errorf("report not written: %v", err)
	}

	families, err := c.Registry.Gather()
	if err != nil {
		t.Fatal(err)
	}
	if len(families) == 0 {
		t.Error("metrics registry has no families after processing")
	}
}
