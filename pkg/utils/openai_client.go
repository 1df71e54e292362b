package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements AIClientInterface using OpenAI chat completions.
// Photo seeding is sent as an image-URL part with a base64 data URL.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) GenerateItinerary(ctx context.Context, prompt string, imageBase64 string, imageMimeType string) (string, error) {
	var message openai.ChatCompletionMessage
	if imageBase64 != "" {
		if imageMimeType == "" {
			imageMimeType = "image/jpeg"
		}
		message = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: prompt},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL: fmt.Sprintf("data:%s;base64,%s", imageMimeType, imageBase64),
					},
				},
			},
		}
	} else {
		message = openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    []openai.ChatCompletionMessage{message},
		Temperature: 0.9,
		MaxTokens:   8192,
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.GenerateItinerary(ctx, prompt, "", "")
}

func (c *OpenAIClient) Close() error {
	return nil
}
