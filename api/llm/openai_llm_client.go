package llm

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAILLMClient implements LLMAPI on the OpenAI chat completions API.
type OpenAILLMClient struct {
	client *openai.Client
	model  string
}

// NewOpenAILLMClient creates a new OpenAI-backed client. A missing API key
// fails here, before any request is attempted.
func NewOpenAILLMClient(apiKey, model string) (*OpenAILLMClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is not set")
	}
	log.Printf("[OpenAILLMClient] Initializing with model %s", model)
	return &OpenAILLMClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Complete sends one system+user exchange and returns the raw text reply.
func (c *OpenAILLMClient) Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
