package translator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// ErrUnavailable is returned while the circuit breaker is open.
var ErrUnavailable = errors.New("translation service unavailable")

// GeminiConfig configures the Gemini translator.
type GeminiConfig struct {
	APIKeys           []string
	Model             string
	RequestsPerSecond float64
	Burst             int
	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

type implGemini struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	generate   generateFunc
	breaker    *gobreaker.CircuitBreaker
	limiter    *rate.Limiter
	logger     logger.Logger
}

// NewGemini creates a Translator backed by Gemini that rotates through the
// supplied API keys on quota errors.
func NewGemini(cfg GeminiConfig, log logger.Logger) (Translator, error) {
	return newGemini(cfg, log, geminiGenerate)
}

func newGemini(cfg GeminiConfig, log logger.Logger, gen generateFunc) (*implGemini, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("gemini translator needs at least one API key")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 60 * time.Second
	}

	threshold := cfg.FailureThreshold
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini-translate",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn(context.Background(), "Circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &implGemini{
		apiKeys:  cfg.APIKeys,
		model:    cfg.Model,
		generate: gen,
		breaker:  breaker,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		logger:   log,
	}, nil
}
