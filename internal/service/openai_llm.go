package service

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAILLM sends prompts to an OpenAI-compatible chat completion endpoint.
type OpenAILLM struct {
	client      *openai.Client
	apiKey      string
	model       string
	temperature float32
}

// NewOpenAILLM builds the client. baseURL may be empty for the public API.
func NewOpenAILLM(apiKey, model, baseURL string, temperature float32) *OpenAILLM {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAILLM{
		client:      openai.NewClientWithConfig(cfg),
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
	}
}

func (l *OpenAILLM) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	if l.apiKey == "" {
		return "", goerr.New("OPENAI_API_KEY is not set")
	}

	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: l.temperature,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to create chat completion", goerr.V("model", l.model))
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", goerr.New("no completion choices returned", goerr.V("model", l.model))
	}
	return resp.Choices[0].Message.Content, nil
}
