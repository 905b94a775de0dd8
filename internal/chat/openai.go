package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openAICompleter struct {
	client openai.Client
	model  string
}

func newOpenAI(cfg ProviderConfig, key string) *openAICompleter {
	opts := []option.RequestOption{
		option.WithAPIKey(key),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	return &openAICompleter{
		client: openai.NewClient(opts...),
		model:  modelOr(cfg.Model, DefaultOpenAIModel),
	}
}

func (c *openAICompleter) Name() string { return ProviderOpenAI }

func (c *openAICompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", ErrEmptyAnswer)
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("openai: %w", ErrEmptyAnswer)
	}
	return answer, nil
}
