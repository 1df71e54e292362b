package utils

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements AIClientInterface using Google's Gemini models
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(apiKey, model string) (AIClientInterface, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) generativeModel() *genai.GenerativeModel {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.9)
	m.SetTopK(1)
	m.SetTopP(1)
	m.SetMaxOutputTokens(8192)
	return m
}

// GenerateItinerary sends the planning prompt, with the photo attached as an
// inline image part when one was provided. The raw response text is returned
// as-is; fence stripping and validation are the caller's job.
func (c *GeminiClient) GenerateItinerary(ctx context.Context, prompt string, imageBase64 string, imageMimeType string) (string, error) {
	parts := []genai.Part{genai.Text(prompt)}

	if imageBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(imageBase64)
		if err != nil {
			return "", fmt.Errorf("invalid base64 image data: %w", err)
		}
		if imageMimeType == "" {
			imageMimeType = "image/jpeg"
		}
		parts = append(parts, genai.Blob{MIMEType: imageMimeType, Data: data})
	}

	m := c.generativeModel()
	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	return extractText(resp)
}

// GenerateText sends a text-only prompt.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m := c.generativeModel()
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			out += string(t)
		}
	}
	if out == "" {
		return "", fmt.Errorf("no text content in Gemini response")
	}
	return out, nil
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
