// ABOUTME: OpenAI-backed Completer for clarification-question generation
// ABOUTME: Single attempt per call; a failed call routes the caller to its fallback
package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// maxOutputTokens bounds the model output; 4 short questions fit easily
	maxOutputTokens = 300
	// completionTemperature leaves room for contextual phrasing without drift
	completionTemperature = 0.7
)

// OpenAIClient implements Completer over the OpenAI chat completion API.
// There is no retry here: total latency must stay bounded by the caller's
// timeout plus its deterministic fallback cost.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a client for the given key and model. An empty
// model selects DefaultChatModel.
func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = DefaultChatModel
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Complete sends the prompt as a single user message and returns the raw
// text content. Timeout and cancellation come from ctx.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: completionTemperature,
		MaxTokens:   maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
