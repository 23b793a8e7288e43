package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

const translatePrompt = `Translate the text between the markers into the language with ISO 639-1 code "%s".
Detect the source language automatically. Reply with the translation only, without comments or markers.
If the text is already in that language, reply with it unchanged.

---
%s
---`

// Translate sends text to Gemini. Whitespace-only input is returned as is.
func (g *implGemini) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	prompt := fmt.Sprintf(translatePrompt, targetLang, text)
	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.callWithRotation(ctx, prompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return "", err
	}

	return strings.TrimSpace(out.(string)), nil
}

// callWithRotation tries each key at most once, moving on when a key is rate
// limited or its client cannot be created.
func (g *implGemini) callWithRotation(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for range g.apiKeys {
		key, idx := g.key()

		text, err := g.generate(ctx, key, g.model, prompt)
		if err == nil {
			return text, nil
		}
		if !shouldRotate(err) {
			return "", fmt.Errorf("generate content: %w", err)
		}

		g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
		g.rotateKey()
		lastErr = err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) key() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey], g.currentKey
}

func (g *implGemini) rotateKey() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

var errClientCreate = errors.New("create gemini client")

func shouldRotate(err error) bool {
	if errors.Is(err, errClientCreate) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func geminiGenerate(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errClientCreate, err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var sb strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
		return sb.String(), nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
