package llm

import (
	"context"
	"encoding/json"
)

// represents different generative model providers
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

// produces schema-constrained JSON output for a prompt. The prompt is
// expected to instruct the model to return a single JSON object; callers
// validate the shape of the returned payload themselves.
type SuggestionGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error)
	Model() string
}

// holds configuration for generator initialization
type Config struct {
	Provider Provider
	APIKey   string
	Model    string // e.g., "gemini-2.0-flash" or "claude-sonnet-4-20250514"

	// optional parameters
	MaxTokens   int
	Temperature float32
}
