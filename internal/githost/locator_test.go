package githost

import (
	"context"
	"errors"
	"testing"
)

// implements ContentFetcher for testing, recording every probe
type stubFetcher struct {
	files  map[string]string // path -> content
	errs   map[string]error  // path -> non-"not found" error
	probes []string
}

func (s *stubFetcher) GetFileContent(_ context.Context, _, _, _, path string) (string, error) {
	s.probes = append(s.probes, path)

	if err, ok := s.errs[path]; ok {
		return "", err
	}

	if content, ok := s.files[path]; ok {
		return content, nil
	}

	return "", ErrFileNotFound
}

func TestLocate_FirstMatchWins(t *testing.T) {
	fetcher := &stubFetcher{
		files: map[string]string{
			"main.py": "print('hello')",
			"main.go": "package main", // later candidate, must never be probed
		},
	}

	locator := NewLocator(fetcher)

	file, err := locator.Locate(context.Background(), "token", "octocat", "demo")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if file.Path != "main.py" {
		t.Errorf("expected main.py, got %s", file.Path)
	}

	if file.Content != "print('hello')" {
		t.Errorf("unexpected content: %s", file.Content)
	}

	if file.Language != "python" {
		t.Errorf("expected python, got %s", file.Language)
	}

	// probing stops at the first hit: index.js, src/index.js, app.js,
	// server.js, then main.py — nothing beyond
	wantProbes := []string{"index.js", "src/index.js", "app.js", "server.js", "main.py"}

	if len(fetcher.probes) != len(wantProbes) {
		t.Fatalf("expected %d probes, got %d: %v", len(wantProbes), len(fetcher.probes), fetcher.probes)
	}

	for i, want := range wantProbes {
		if fetcher.probes[i] != want {
			t.Errorf("probe %d: expected %s, got %s", i, want, fetcher.probes[i])
		}
	}
}

func TestLocate_ContinuesPastProbeErrors(t *testing.T) {
	fetcher := &stubFetcher{
		errs: map[string]error{
			"index.js": errors.New("rate limit exceeded"),
		},
		files: map[string]string{
			"src/index.js": "module.exports = {}",
		},
	}

	locator := NewLocator(fetcher)

	file, err := locator.Locate(context.Background(), "token", "octocat", "demo")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// a failing probe must not abort the scan
	if file.Path != "src/index.js" {
		t.Errorf("expected src/index.js, got %s", file.Path)
	}
}

func TestLocate_Exhaustion(t *testing.T) {
	fetcher := &stubFetcher{}

	locator := NewLocator(fetcher)

	_, err := locator.Locate(context.Background(), "token", "octocat", "empty")

	var notFound *NoScannableFileError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NoScannableFileError, got: %v", err)
	}

	// diagnostics carry every attempted path, in probe order
	if len(notFound.Attempted) != len(defaultCandidatePaths) {
		t.Fatalf("expected %d attempted paths, got %d", len(defaultCandidatePaths), len(notFound.Attempted))
	}

	for i, want := range defaultCandidatePaths {
		if notFound.Attempted[i] != want {
			t.Errorf("attempted %d: expected %s, got %s", i, want, notFound.Attempted[i])
		}
	}
}

func TestLocate_CustomCandidates(t *testing.T) {
	fetcher := &stubFetcher{
		files: map[string]string{
			"lib/entry.rb": "puts 'hi'",
		},
	}

	locator := NewLocator(fetcher, WithCandidatePaths("lib/entry.rb"))

	file, err := locator.Locate(context.Background(), "token", "octocat", "demo")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if file.Language != "ruby" {
		t.Errorf("expected ruby, got %s", file.Language)
	}
}

func TestLanguageForPath(t *testing.T) {
	locator := NewLocator(&stubFetcher{})

	cases := []struct {
		path string
		want string
	}{
		{"index.js", "javascript"},
		{"src/index.ts", "typescript"},
		{"main.py", "python"},
		{"main.go", "go"},
		{"main.rb", "ruby"},
		{"src/main.rs", "rust"},
		{"Program.cs", "csharp"},
		{"src/main/java/Main.java", "java"},
		{"mystery.xyz", "javascript"}, // unmapped extension falls back
		{"Makefile", "javascript"},    // no extension falls back
	}

	for _, tc := range cases {
		if got := locator.LanguageForPath(tc.path); got != tc.want {
			t.Errorf("LanguageForPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestLanguageForPath_ConfigurableTable(t *testing.T) {
	locator := NewLocator(&stubFetcher{},
		WithLanguage("kt", "kotlin"),
		WithFallbackLanguage("plaintext"),
	)

	if got := locator.LanguageForPath("Main.kt"); got != "kotlin" {
		t.Errorf("expected kotlin, got %s", got)
	}

	if got := locator.LanguageForPath("mystery.xyz"); got != "plaintext" {
		t.Errorf("expected plaintext, got %s", got)
	}
}
