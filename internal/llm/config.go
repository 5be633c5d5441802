package llm

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultAnthropicModel = "claude-sonnet-4-20250514"
)

// loads generator configuration from environment variables
func loadConfig() (*Config, error) {
	provider := Provider(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = ProviderGemini // default
	}

	var apiKey, model string

	switch provider {
	case ProviderGemini:
		apiKey = os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}

		model = os.Getenv("LLM_MODEL")
		if model == "" {
			model = defaultGeminiModel
		}
	case ProviderAnthropic:
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}

		model = os.Getenv("LLM_MODEL")
		if model == "" {
			model = defaultAnthropicModel
		}
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}

	maxTokens := 0
	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_MAX_TOKENS: %w", err)
		}
		maxTokens = n
	}

	return &Config{
		Provider:  provider,
		APIKey:    apiKey,
		Model:     model,
		MaxTokens: maxTokens,
	}, nil
}
