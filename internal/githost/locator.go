package githost

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/codesentinel/server/internal/logger"
)

// conventional entry-point files probed in order; first hit wins
var defaultCandidatePaths = []string{
	"index.js", "src/index.js", "app.js", "server.js", // JavaScript
	"main.py", "app.py", // Python
	"index.ts", "src/index.ts", // TypeScript
	"main.go",                   // Go
	"main.rb",                   // Ruby
	"src/main.rs",               // Rust
	"Program.cs",                // C#
	"src/main/java/Main.java",   // Java
}

var defaultLanguageByExtension = map[string]string{
	"js":   "javascript",
	"ts":   "typescript",
	"py":   "python",
	"go":   "go",
	"rb":   "ruby",
	"rs":   "rust",
	"cs":   "csharp",
	"java": "java",
}

const defaultFallbackLanguage = "javascript"

// finds one scannable file in a repository by probing a fixed ordered list
// of conventional paths against the hosting provider
type Locator struct {
	fetcher   ContentFetcher
	paths     []string
	languages map[string]string
	fallback  string
}

type LocatorOption func(*Locator)

// replaces the candidate path list
func WithCandidatePaths(paths ...string) LocatorOption {
	return func(l *Locator) {
		l.paths = paths
	}
}

// changes the language label used for unmapped extensions
func WithFallbackLanguage(label string) LocatorOption {
	return func(l *Locator) {
		l.fallback = label
	}
}

// adds or overrides one extension-to-language mapping
func WithLanguage(extension, label string) LocatorOption {
	return func(l *Locator) {
		l.languages[extension] = label
	}
}

func NewLocator(fetcher ContentFetcher, opts ...LocatorOption) *Locator {
	languages := make(map[string]string, len(defaultLanguageByExtension))
	for ext, label := range defaultLanguageByExtension {
		languages[ext] = label
	}

	l := &Locator{
		fetcher:   fetcher,
		paths:     defaultCandidatePaths,
		languages: languages,
		fallback:  defaultFallbackLanguage,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// probes the candidate paths in order and returns the first that resolves
// to a file. A "not found" probe moves on silently; any other probe failure
// is logged and skipped, since the provider does not always distinguish a
// missing file from a transient error. Exhausting the list fails with
// NoScannableFileError carrying every attempted path.
func (l *Locator) Locate(ctx context.Context, token, owner, repo string) (*LocatedFile, error) {
	attempted := make([]string, 0, len(l.paths))

	for _, candidate := range l.paths {
		attempted = append(attempted, candidate)

		content, err := l.fetcher.GetFileContent(ctx, token, owner, repo, candidate)
		if err != nil {
			if !errors.Is(err, ErrFileNotFound) {
				logger.Warn("could not check candidate file",
					"owner", owner,
					"repo", repo,
					"path", candidate,
					"error", err,
				)
			}

			continue
		}

		return &LocatedFile{
			Path:     candidate,
			Content:  content,
			Language: l.LanguageForPath(candidate),
		}, nil
	}

	return nil, &NoScannableFileError{Attempted: attempted}
}

// maps a file path to a language label by extension, falling back to the
// configured default for unmapped extensions
func (l *Locator) LanguageForPath(filePath string) string {
	ext := strings.TrimPrefix(path.Ext(filePath), ".")

	if label, ok := l.languages[ext]; ok {
		return label
	}

	return l.fallback
}
