package llm

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIGenerator implements Generator using the official openai-go SDK
// (chat completions).
type OpenAIGenerator struct {
	// model is the chat model identifier, e.g. "gpt-4o-mini".
	model string

	// opts are the request options applied to every call (API key, base URL).
	opts []option.RequestOption
}

// OpenAIConfig holds the settings needed to build an OpenAIGenerator.
type OpenAIConfig struct {
	// Model is the chat model identifier. Required.
	Model string

	// APIKey authenticates with the OpenAI API. Required.
	APIKey string

	// BaseURL overrides the API endpoint, for proxies and compatible
	// providers. Optional.
	BaseURL string
}

// NewOpenAIGenerator creates a Generator backed by the OpenAI API.
func NewOpenAIGenerator(cfg OpenAIConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing; set OPENAI_API_KEY")
	}
	if cfg.Model == "" {
		return nil, errors.New("model name is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIGenerator{model: cfg.Model, opts: opts}, nil
}

// Generate sends the prompt as a single user message and returns the first
// completion choice.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(g.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
