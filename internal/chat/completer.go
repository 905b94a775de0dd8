package chat

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// Completer asks a remote model for an answer. Implementations make one
// request per call and never retry.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	Name() string
}

// Provider names accepted by NewCompleter.
const (
	ProviderNone      = ""
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// ProviderConfig selects and configures a remote provider.
type ProviderConfig struct {
	Provider string
	Model    string
	// APIKey takes precedence over the provider's environment variable.
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Default models per provider.
const (
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-3-5-haiku-latest"
	DefaultGeminiModel    = "gemini-2.0-flash"
)

// envKeys lists the environment variables consulted for each provider.
var envKeys = map[string][]string{
	ProviderOpenAI:    {"RIMIKO_OPENAI_API_KEY", "OPENAI_API_KEY"},
	ProviderAnthropic: {"RIMIKO_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"},
	ProviderGemini:    {"RIMIKO_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"},
}

// ResolveAPIKey returns the configured key or the first non-empty
// environment variable for the provider.
func (c ProviderConfig) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	for _, name := range envKeys[c.Provider] {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// NewCompleter builds the completer for cfg.Provider. It returns nil and
// no error when no provider is configured.
func NewCompleter(ctx context.Context, cfg ProviderConfig) (Completer, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == ProviderNone {
		return nil, nil
	}
	cfg.Provider = provider

	key := cfg.ResolveAPIKey()
	if key == "" {
		return nil, fmt.Errorf("%s: %w", provider, ErrNoAPIKey)
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAI(cfg, key), nil
	case ProviderAnthropic:
		return newAnthropic(cfg, key), nil
	case ProviderGemini:
		return newGemini(ctx, cfg, key)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func modelOr(model, fallback string) string {
	if model == "" {
		return fallback
	}
	return model
}
