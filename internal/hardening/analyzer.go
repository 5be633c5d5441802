package hardening

import (
	"context"
	"fmt"

	"github.com/codesentinel/server/internal/llm"
	"github.com/codesentinel/server/internal/logger"
)

// turns one analysis request into one validated result by invoking the
// generative model. Stateless; every call is independent.
type Analyzer struct {
	generator llm.SuggestionGenerator
}

func NewAnalyzer(generator llm.SuggestionGenerator) *Analyzer {
	return &Analyzer{generator: generator}
}

// requests hardening suggestions for one code sample. Exactly one outbound
// model call per invocation and no retries; a transient upstream failure
// surfaces immediately with the upstream message attached. On success the
// result has already passed schema validation.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Result, error) {
	prompt := BuildPrompt(req.Code, req.Language)

	raw, err := a.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("suggestion request failed: %w", err)
	}

	result, err := ParseResult(raw)
	if err != nil {
		// the malformed payload is logged server-side only, never surfaced
		// to the caller
		logger.Warn("model returned malformed suggestion payload",
			"model", a.generator.Model(),
			"payload_bytes", len(raw),
			"error", err,
		)

		return nil, err
	}

	return result, nil
}
