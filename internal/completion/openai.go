package completion

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mpavlovic/devfolio/internal/apperr"
)

const upstreamName = "OpenAI API"

type OpenAIOption func(*openai.ClientConfig)

// WithBaseURL points the client at an alternative endpoint. Used by tests and
// OpenAI-compatible gateways.
func WithBaseURL(baseURL string) OpenAIOption {
	return func(cfg *openai.ClientConfig) {
		cfg.BaseURL = baseURL
	}
}

type OpenAIClient struct {
	client *openai.Client
}

func NewOpenAIClient(apiKey string, opts ...OpenAIOption) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, apperr.NewValidation("missing OpenAI API key")
	}

	cfg := openai.DefaultConfig(apiKey)
	for _, opt := range opts {
		opt(&cfg)
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
	}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", apperr.NewUpstream(upstreamName, apiErr.HTTPStatusCode, err)
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", apperr.NewUpstream(upstreamName, reqErr.HTTPStatusCode, err)
		}
		return "", apperr.NewUpstream(upstreamName, 0, err)
	}

	if len(resp.Choices) == 0 {
		return "", apperr.NewUpstream(upstreamName, 0, errors.New("response contained no choices"))
	}

	return resp.Choices[0].Message.Content, nil
}

var _ Completer = (*OpenAIClient)(nil)
