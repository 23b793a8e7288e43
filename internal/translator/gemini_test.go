package translator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nguyentantai21042004/speech-digest/internal/logger"
)

type scriptedGen struct {
	errs  map[string]error
	reply string
	keys  []string
}

func (s *scriptedGen) generate(_ context.Context, apiKey, _, _ string) (string, error) {
	s.keys = append(s.keys, apiKey)
	if err := s.errs[apiKey]; err != nil {
		return "", err
	}
	return s.reply, nil
}

func newTestGemini(t *testing.T, keys []string, gen *scriptedGen) *implGemini {
	t.Helper()
	g, err := newGemini(GeminiConfig{
		APIKeys:           keys,
		RequestsPerSecond: 1000,
		Burst:             100,
		OpenTimeout:       time.Hour,
	}, logger.Nop(), gen.generate)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestTranslate(t *testing.T) {
	gen := &scriptedGen{reply: "  Hello world \n"}
	g := newTestGemini(t, []string{"k1"}, gen)

	got, err := g.Translate(context.Background(), "Hola mundo", "en")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "Hello world" {
		t.Errorf("Translate() = %q, want %q", got, "Hello world")
	}
}

func TestTranslateRotatesOnQuota(t *testing.T) {
	gen := &scriptedGen{
		reply: "ok",
		errs:  map[string]error{"k1": errors.New("Error 429: RESOURCE_EXHAUSTED")},
	}
	g := newTestGemini(t, []string{"k1", "k2"}, gen)

	if _, err := g.Translate(context.Background(), "text", "en"); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if len(gen.keys) != 2 || gen.keys[1] != "k2" {
		t.Errorf("keys tried = %v, want [k1 k2]", gen.keys)
	}

	// k2 stays current for the next call
	gen.keys = nil
	if _, err := g.Translate(context.Background(), "text", "en"); err != nil {
		t.Fatal(err)
	}
	if gen.keys[0] != "k2" {
		t.Errorf("next call used %s, want k2", gen.keys[0])
	}
}

func TestTranslateAllKeysExhausted(t *testing.T) {
	quota := errors.New("quota exceeded")
	gen := &scriptedGen{errs: map[string]error{"k1": quota, "k2": quota}}
	g := newTestGemini(t, []string{"k1", "k2"}, gen)

	_, err := g.Translate(context.Background(), "text", "en")
	if !errors.Is(err, quota) {
		t.Errorf("Translate() error = %v, want wrapped quota error", err)
	}
}

func TestTranslateNonQuotaErrorStops(t *testing.T) {
	gen := &scriptedGen{errs: map[string]error{"k1": errors.New("invalid argument")}}
	g := newTestGemini(t, []string{"k1", "k2"}, gen)

	if _, err := g.Translate(context.Background(), "text", "en"); err == nil {
		t.Fatal("Translate() should fail")
	}
	if len(gen.keys) != 1 {
		t.Errorf("keys tried = %v, want only k1", gen.keys)
	}
}

func TestTranslateBreakerOpens(t *testing.T) {
	gen := &scriptedGen{errs: map[string]error{"k1": errors.New("internal error")}}
	g := newTestGemini(t, []string{"k1"}, gen)

	for i := 0; i < 3; i++ {
		if _, err := g.Translate(context.Background(), "text", "en"); err == nil {
			t.Fatal("Translate() should fail")
		}
	}

	_, err := g.Translate(context.Background(), "text", "en")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Translate() error = %v, want ErrUnavailable", err)
	}
	if len(gen.keys) != 3 {
		t.Errorf("backend called %d times, want 3", len(gen.keys))
	}
}

func TestTranslateBlankInput(t *testing.T) {
	gen := &scriptedGen{}
	g := newTestGemini(t, []string{"k1"}, gen)

	got, err := g.Translate(context.Background(), "  ", "en")
	if err != nil || got != "  " {
		t.Errorf("Translate() = %q, %v", got, err)
	}
	if len(gen.keys) != 0 {
		t.Error("backend called for blank input")
	}
}

func TestNewGeminiRequiresKeys(t *testing.T) {
	if _, err := NewGemini(GeminiConfig{}, logger.Nop()); err == nil {
		t.Error("NewGemini() should fail without keys")
	}
}

func TestNoop(t *testing.T) {
	got, err := Noop().Translate(context.Background(), "Bonjour", "en")
	if err != nil || got != "Bonjour" {
		t.Errorf("Noop().Translate() = %q, %v", got, err)
	}
}
