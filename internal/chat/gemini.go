package chat

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

type geminiCompleter struct {
	client *genai.Client
	model  string
}

func newGemini(ctx context.Context, cfg ProviderConfig, key string) (*geminiCompleter, error) {
	cc := &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiCompleter{
		client: client,
		model:  modelOr(cfg.Model, DefaultGeminiModel),
	}, nil
}

func (c *geminiCompleter) Name() string { return ProviderGemini }

func (c *geminiCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return "", fmt.Errorf("gemini: %w", ErrEmptyAnswer)
	}
	return answer, nil
}
