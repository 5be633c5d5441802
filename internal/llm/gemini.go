package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

type GeminiConfig struct {
	APIKey string
	Model  string // e.g., "gemini-2.0-flash"
}

// generates JSON suggestion payloads through the Gemini API. The client
// requests application/json output so the model returns a bare JSON object
// without markdown wrapping.
type GeminiGenerator struct {
	cli   *genai.Client
	model string
}

func NewGeminiGenerator(ctx context.Context, config GeminiConfig) (*GeminiGenerator, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiGenerator{cli: cli, model: model}, nil
}

func (g *GeminiGenerator) Model() string {
	return g.model
}

// sends the prompt and returns the raw JSON payload from the model.
// Exactly one API call per invocation; upstream failures surface immediately.
func (g *GeminiGenerator) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content in gemini response")
	}

	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)

	return json.RawMessage(stripCodeFences(text)), nil
}
