package hardening

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// implements llm.SuggestionGenerator for testing
type mockGenerator struct {
	generateFunc func(ctx context.Context, prompt string) (json.RawMessage, error)
	calls        int
}

func (m *mockGenerator) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	m.calls++

	if m.generateFunc != nil {
		return m.generateFunc(ctx, prompt)
	}

	return json.RawMessage(`{"suggestions": []}`), nil
}

func (m *mockGenerator) Model() string {
	return "mock-model"
}

func TestAnalyze_Success(t *testing.T) {
	gen := &mockGenerator{
		generateFunc: func(_ context.Context, prompt string) (json.RawMessage, error) {
			// the prompt must carry the submitted code and language
			for _, want := range []string{"eval(input)", "javascript"} {
				if !contains(prompt, want) {
					t.Errorf("expected prompt to contain %q", want)
				}
			}

			return json.RawMessage(validPayload), nil
		},
	}

	analyzer := NewAnalyzer(gen)

	result, err := analyzer.Analyze(context.Background(), Request{
		Code:     "eval(input)",
		Language: "javascript",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(result.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(result.Suggestions))
	}

	if gen.calls != 1 {
		t.Errorf("expected exactly one model call, got %d", gen.calls)
	}
}

func TestAnalyze_UpstreamFailure(t *testing.T) {
	upstreamErr := errors.New("quota exceeded")
	gen := &mockGenerator{
		generateFunc: func(_ context.Context, _ string) (json.RawMessage, error) {
			return nil, upstreamErr
		},
	}

	analyzer := NewAnalyzer(gen)

	_, err := analyzer.Analyze(context.Background(), Request{Code: "x", Language: "go"})

	if err == nil {
		t.Fatal("expected error")
	}

	// the upstream message is attached, not swallowed
	if !errors.Is(err, upstreamErr) {
		t.Errorf("expected upstream error to be wrapped, got: %v", err)
	}

	// no retry at this layer
	if gen.calls != 1 {
		t.Errorf("expected exactly one model call, got %d", gen.calls)
	}
}

func TestAnalyze_SchemaViolation(t *testing.T) {
	gen := &mockGenerator{
		generateFunc: func(_ context.Context, _ string) (json.RawMessage, error) {
			return json.RawMessage(`{"suggestions": [{"title": "t", "severity": "critical", "description": "d", "refactoredCode": "r", "explanation": "e", "compliance": "c"}]}`), nil
		},
	}

	analyzer := NewAnalyzer(gen)

	_, err := analyzer.Analyze(context.Background(), Request{Code: "x", Language: "go"})

	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected schema violation, got: %v", err)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	gen := &mockGenerator{
		generateFunc: func(_ context.Context, _ string) (json.RawMessage, error) {
			return json.RawMessage(validPayload), nil
		},
	}

	analyzer := NewAnalyzer(gen)
	req := Request{Code: "eval(input)", Language: "javascript"}

	first, err := analyzer.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	second, err := analyzer.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// no hidden state between calls
	if fmt.Sprintf("%+v", first) != fmt.Sprintf("%+v", second) {
		t.Error("expected identical results for identical requests")
	}
}

func contains(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}

	return false
}
