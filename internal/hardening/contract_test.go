package hardening

import (
	"encoding/json"
	"strings"
	"testing"
)

const validPayload = `{
	"suggestions": [
		{
			"title": "SQL Injection",
			"severity": "high",
			"description": "User input is concatenated into a SQL query.",
			"refactoredCode": "db.Query(\"SELECT * FROM users WHERE id = $1\", id)",
			"explanation": "Parameterized queries keep input out of the query text.",
			"compliance": "OWASP A03:2021 - Injection"
		},
		{
			"title": "Reflected XSS",
			"severity": "medium",
			"description": "Query parameter is echoed into the page unescaped.",
			"refactoredCode": "template.HTMLEscapeString(input)",
			"explanation": "Escaping prevents script injection into rendered HTML.",
			"compliance": "OWASP A03:2021 - Injection"
		}
	]
}`

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("SELECT * FROM users", "sql")

	if !strings.Contains(prompt, "SELECT * FROM users") {
		t.Error("expected prompt to contain the code sample")
	}

	if !strings.Contains(prompt, `"sql"`) {
		t.Error("expected prompt to contain the language label")
	}

	if !strings.Contains(prompt, `"suggestions"`) {
		t.Error("expected prompt to name the top-level output key")
	}
}

func TestParseResult_Valid(t *testing.T) {
	result, err := ParseResult(json.RawMessage(validPayload))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(result.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(result.Suggestions))
	}

	// order must match the model's output order
	if result.Suggestions[0].Title != "SQL Injection" {
		t.Errorf("unexpected first suggestion: %s", result.Suggestions[0].Title)
	}

	if result.Suggestions[1].Severity != SeverityMedium {
		t.Errorf("unexpected severity: %s", result.Suggestions[1].Severity)
	}
}

func TestParseResult_EmptySuggestions(t *testing.T) {
	result, err := ParseResult(json.RawMessage(`{"suggestions": []}`))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(result.Suggestions) != 0 {
		t.Errorf("expected empty suggestions, got %d", len(result.Suggestions))
	}
}

func TestParseResult_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{
			name:    "invalid severity value",
			payload: `{"suggestions": [{"title": "t", "severity": "critical", "description": "d", "refactoredCode": "r", "explanation": "e", "compliance": "c"}]}`,
		},
		{
			name:    "missing severity",
			payload: `{"suggestions": [{"title": "t", "description": "d", "refactoredCode": "r", "explanation": "e", "compliance": "c"}]}`,
		},
		{
			name:    "missing refactoredCode",
			payload: `{"suggestions": [{"title": "t", "severity": "low", "description": "d", "explanation": "e", "compliance": "c"}]}`,
		},
		{
			name:    "missing suggestions key",
			payload: `{"findings": []}`,
		},
		{
			name:    "not json",
			payload: `here are your suggestions!`,
		},
		{
			name:    "suggestions not an array",
			payload: `{"suggestions": "none"}`,
		},
		{
			name: "one bad entry fails the whole payload",
			payload: `{"suggestions": [
				{"title": "t", "severity": "low", "description": "d", "refactoredCode": "r", "explanation": "e", "compliance": "c"},
				{"title": "t2", "severity": "severe", "description": "d", "refactoredCode": "r", "explanation": "e", "compliance": "c"}
			]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseResult(json.RawMessage(tc.payload))

			if err == nil {
				t.Fatal("expected schema violation, got nil error")
			}
		})
	}
}

func TestSeverityValid(t *testing.T) {
	for _, s := range []Severity{SeverityLow, SeverityMedium, SeverityHigh} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	for _, s := range []Severity{"critical", "HIGH", "", "info"} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
