package utils

import (
	"context"
	"fmt"
	"strings"
)

// AIClientInterface abstracts the hosted generative model used for itinerary
// generation and IATA code lookups.
type AIClientInterface interface {
	// GenerateItinerary sends the planning prompt, optionally seeded with a
	// base64-encoded photo, and returns the raw model output untouched.
	GenerateItinerary(ctx context.Context, prompt string, imageBase64 string, imageMimeType string) (string, error)

	// GenerateText sends a text-only prompt and returns the raw output.
	GenerateText(ctx context.Context, prompt string) (string, error)

	Close() error
}

// NewAIClient creates either an OpenAI or Gemini client based on config.
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", provider)
	}
}
