package actions

import (
	"github.com/codesentinel/server/internal/githost"
	"github.com/codesentinel/server/internal/hardening"
)

// the uniform success/failure wrapper returned by every entry point.
// The presentation layer depends on this shape and nothing else: no
// status codes or error types cross the boundary.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

func fail[T any](message string) Envelope[T] {
	return Envelope[T]{Success: false, Error: message}
}

// result of scanning one repository: the validated suggestions plus the
// path of the file that was analyzed
type ScanData struct {
	Suggestions []hardening.Suggestion `json:"suggestions"`
	ScannedFile string                 `json:"scanned_file"`
}

// aliases re-exported for the presentation layer
type (
	Repository = githost.Repository
	Suggestion = hardening.Suggestion
	Result     = hardening.Result
)
