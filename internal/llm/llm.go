package llm

import (
	"context"
	"fmt"
)

// creates a new suggestion generator with auto-configuration from environment variables
func New(ctx context.Context) (SuggestionGenerator, error) {
	config, err := loadConfig()

	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewWithConfig(ctx, config)
}

// creates a new suggestion generator with explicit configuration
func NewWithConfig(ctx context.Context, config *Config) (SuggestionGenerator, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiGenerator(ctx, GeminiConfig{
			APIKey: config.APIKey,
			Model:  config.Model,
		})
	case ProviderAnthropic:
		return NewAnthropicGenerator(AnthropicConfig{
			APIKey:      config.APIKey,
			Model:       config.Model,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}
}
