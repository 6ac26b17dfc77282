package ai

import (
	"context"
	"errors"
)

// adCopyTemperature favors deterministic, on-brief copy over creativity.
const adCopyTemperature = 0.2

// Provider defines the interface for completion API backends.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Complete sends one chat completion request and returns the raw
	// response text. format declares the structured-output constraint;
	// providers that cannot enforce schemas ignore it and rely on the
	// system prompt (the normalizer covers the difference).
	Complete(ctx context.Context, systemPrompt, userPrompt string, format ResponseFormat) (string, error)
}

// ResponseFormat declares the JSON schema a response must conform to.
// A nil Schema means no response_format is sent.
type ResponseFormat struct {
	Name        string
	Description string
	Schema      any
}

// Config holds the configuration for a completion API backend.
type Config struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai, required for compatible
	Model    string
}

// ProviderType constants
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

// NewProvider creates a new completion provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return nil, ErrInvalidProvider
	}
}
