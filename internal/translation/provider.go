package translation

import (
	"context"
	"fmt"
)

// Provider defines the interface for remote translation backends
type Provider interface {
	// Translate translates text from source to target language
	Translate(ctx context.Context, text, source, target string) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured
	IsAvailable() error
}

// NewProvider creates the provider selected in config, wrapped in a circuit
// breaker when one is enabled.
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		provider Provider
		err      error
	)

	switch config.Provider {
	case "openai":
		provider, err = NewOpenAIProvider(config)
	case "gemini":
		provider, err = NewGeminiProvider(ctx, config)
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	if config.BreakerEnabled {
		provider = NewBreakerProvider(provider, config.BreakerFailures, config.BreakerCooldown)
	}

	return provider, nil
}
