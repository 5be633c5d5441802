package hardening

import "errors"

// assessed severity of a finding; the model contract allows exactly three values
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// reports whether s is one of the three allowed severities
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}

	return false
}

// one code sample submitted for analysis
type Request struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// one structured security finding with its proposed fix
type Suggestion struct {
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	RefactoredCode string   `json:"refactoredCode"`
	Explanation    string   `json:"explanation"`
	Compliance     string   `json:"compliance"`
}

// the validated output of one analysis call, in model order
type Result struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// the model's output did not conform to the suggestion contract
var ErrSchemaViolation = errors.New("model output violates suggestion schema")
