package actions

import (
	"context"
	"fmt"

	"github.com/codesentinel/server/internal/githost"
	"github.com/codesentinel/server/internal/hardening"
)

// produces validated suggestion results for one code sample
type CodeAnalyzer interface {
	Analyze(ctx context.Context, req hardening.Request) (*hardening.Result, error)
}

// exposes the three operations the presentation layer calls. Stateless;
// credentials are supplied per call and never retained.
type Service struct {
	analyzer CodeAnalyzer
	provider githost.Provider
	locator  *githost.Locator
}

func NewService(analyzer CodeAnalyzer, provider githost.Provider, opts ...githost.LocatorOption) *Service {
	return &Service{
		analyzer: analyzer,
		provider: provider,
		locator:  githost.NewLocator(provider, opts...),
	}
}

// analyzes one pasted code sample and returns hardening suggestions
func (s *Service) Analyze(ctx context.Context, code, language string) Envelope[*Result] {
	result, err := s.analyzer.Analyze(ctx, hardening.Request{
		Code:     code,
		Language: language,
	})
	if err != nil {
		return fail[*Result](fmt.Sprintf("an unexpected error occurred on the server: %s", err))
	}

	return ok(result)
}

// lists the user's repositories, most recently updated first. Fails fast
// on an empty token without touching the network.
func (s *Service) ListRepositories(ctx context.Context, token string) Envelope[[]Repository] {
	if token == "" {
		return fail[[]Repository]("a GitHub access token is required")
	}

	repos, err := s.provider.ListRepositories(ctx, token)
	if err != nil {
		return fail[[]Repository](fmt.Sprintf("failed to fetch repositories: %s", err))
	}

	return ok(repos)
}

// scans one repository: locates its first conventional entry-point file,
// analyzes its content, and reports which file was scanned. Each stage's
// failure message passes through to the caller unchanged.
func (s *Service) ScanRepository(ctx context.Context, owner, repo, token string) Envelope[*ScanData] {
	if owner == "" || repo == "" {
		return fail[*ScanData]("invalid input for scanning repository")
	}

	if token == "" {
		return fail[*ScanData]("a GitHub access token is required")
	}

	file, err := s.locator.Locate(ctx, token, owner, repo)
	if err != nil {
		return fail[*ScanData](err.Error())
	}

	analysis := s.Analyze(ctx, file.Content, file.Language)
	if !analysis.Success {
		return fail[*ScanData](analysis.Error)
	}

	return ok(&ScanData{
		Suggestions: analysis.Data.Suggestions,
		ScannedFile: file.Path,
	})
}
