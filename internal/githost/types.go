package githost

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// one repository owned by or accessible to the authenticated user,
// passed through from the hosting provider's listing call
type Repository struct {
	Owner       string    `json:"owner"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	Private     bool      `json:"private"`
	HTMLURL     string    `json:"html_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// one scannable file discovered by the locator; lives for the duration
// of a single scan call
type LocatedFile struct {
	Path     string
	Content  string
	Language string
}

// fetches a single file's decoded content. Implementations return
// ErrFileNotFound when the path does not resolve to a regular file.
type ContentFetcher interface {
	GetFileContent(ctx context.Context, token, owner, repo, path string) (string, error)
}

// lists repositories for the user identified by the access token
type RepositoryLister interface {
	ListRepositories(ctx context.Context, token string) ([]Repository, error)
}

// combines the two hosting-provider operations the product needs
type Provider interface {
	ContentFetcher
	RepositoryLister
}

// the requested path does not exist in the repository, or resolves to
// something other than a regular file with inline content
var ErrFileNotFound = errors.New("file not found")

// no candidate path resolved to a scannable file
type NoScannableFileError struct {
	Attempted []string
}

func (e *NoScannableFileError) Error() string {
	return fmt.Sprintf("could not find a scannable source file in the repository, looked for: %s",
		strings.Join(e.Attempted, ", "))
}
