// Package synth produces specimen student records by chaining a structured
// text generation call with a portrait generation call.
package synth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultTextModel       = "gemini-3-pro-preview"
	defaultImageModel      = "gemini-2.5-flash-image"
	defaultThinkingBudget  = 4000
	defaultPlaceholderBase = "https://picsum.photos"
)

// Config holds the generative service settings.
type Config struct {
	APIKey          string
	TextModel       string
	ImageModel      string
	ThinkingBudget  int32
	PlaceholderBase string
}

func (c Config) withDefaults() Config {
	if c.TextModel == "" {
		c.TextModel = defaultTextModel
	}
	if c.ImageModel == "" {
		c.ImageModel = defaultImageModel
	}
	if c.ThinkingBudget == 0 {
		c.ThinkingBudget = defaultThinkingBudget
	}
	if c.PlaceholderBase == "" {
		c.PlaceholderBase = defaultPlaceholderBase
	}
	return c
}

// ContentGenerator is the subset of the genai models service used here.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewGenAI creates a Synthesizer backed by the Gemini API.
// The API key comes only from cfg; the environment is not consulted.
func NewGenAI(ctx context.Context, cfg Config, log *zap.Logger) (*Synthesizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("genai: api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai: create client: %w", err)
	}

	return New(client.Models, cfg, log), nil
}
