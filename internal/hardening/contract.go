package hardening

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The prompt keeps the model's output space deliberately narrow: one top-level
// key, six fields per suggestion, severity restricted to three values. That is
// the whole defense against an unreliable upstream generator, so ParseResult
// rejects anything that strays from it.

const promptTemplate = `You are an expert DevSecOps engineer specializing in code hardening and vulnerability remediation. Please analyze the following code written in "%[1]s" and identify potential security vulnerabilities.

Focus on common attack vectors like SQL injection, Cross-Site Scripting (XSS), insecure deserialization, command injection, and other issues relevant to the OWASP Top 10.

For each vulnerability found, provide a JSON object with the following fields:
1.  "title": A brief title for the vulnerability.
2.  "severity": The assessed severity, which must be one of: "low", "medium", or "high".
3.  "description": A clear description of the security risk.
4.  "refactoredCode": A hardened code snippet that remediates the vulnerability.
5.  "explanation": An explanation of why the refactored code is more secure.
6.  "compliance": The relevant compliance standard (e.g., "OWASP A03:2021 - Injection").

Return your findings as a JSON object with a single key "suggestions" which is an array of these vulnerability objects. Return ONLY valid JSON, no markdown or explanations.

--- Code to Analyze (%[1]s) ---
%[2]s
--- End Code ---
`

// renders the analysis prompt for one code sample
func BuildPrompt(code, language string) string {
	return fmt.Sprintf(promptTemplate, language, code)
}

// wire shapes use pointers so a missing field is distinguishable from an
// empty string
type rawResult struct {
	Suggestions *[]rawSuggestion `json:"suggestions"`
}

type rawSuggestion struct {
	Title          *string `json:"title"`
	Severity       *string `json:"severity"`
	Description    *string `json:"description"`
	RefactoredCode *string `json:"refactoredCode"`
	Explanation    *string `json:"explanation"`
	Compliance     *string `json:"compliance"`
}

// validates the model's raw output against the suggestion contract. A single
// malformed entry fails the whole call; partially valid payloads are never
// passed through.
func ParseResult(raw json.RawMessage) (*Result, error) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))

	var parsed rawResult
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	if parsed.Suggestions == nil {
		return nil, fmt.Errorf("%w: missing \"suggestions\" key", ErrSchemaViolation)
	}

	suggestions := make([]Suggestion, 0, len(*parsed.Suggestions))

	for i, s := range *parsed.Suggestions {
		if err := checkRequired(i, map[string]*string{
			"title":          s.Title,
			"severity":       s.Severity,
			"description":    s.Description,
			"refactoredCode": s.RefactoredCode,
			"explanation":    s.Explanation,
			"compliance":     s.Compliance,
		}); err != nil {
			return nil, err
		}

		severity := Severity(*s.Severity)
		if !severity.Valid() {
			return nil, fmt.Errorf("%w: suggestion %d has severity %q, want one of low, medium, high",
				ErrSchemaViolation, i, *s.Severity)
		}

		suggestions = append(suggestions, Suggestion{
			Title:          *s.Title,
			Severity:       severity,
			Description:    *s.Description,
			RefactoredCode: *s.RefactoredCode,
			Explanation:    *s.Explanation,
			Compliance:     *s.Compliance,
		})
	}

	return &Result{Suggestions: suggestions}, nil
}

func checkRequired(index int, fields map[string]*string) error {
	// deterministic order for error messages
	for _, name := range []string{"title", "severity", "description", "refactoredCode", "explanation", "compliance"} {
		if fields[name] == nil {
			return fmt.Errorf("%w: suggestion %d is missing required field %q", ErrSchemaViolation, index, name)
		}
	}

	return nil
}
