package githost

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v72/github"
)

// implements Provider against the GitHub REST API. The access token is
// supplied per call and never stored; each call builds a short-lived
// authenticated client around the shared transport.
type GitHubProvider struct{}

func NewGitHubProvider() *GitHubProvider {
	return &GitHubProvider{}
}

// lists up to 100 repositories for the authenticated user, most recently
// updated first
func (p *GitHubProvider) ListRepositories(ctx context.Context, token string) ([]Repository, error) {
	client := github.NewClient(nil).WithAuthToken(token)

	repos, _, err := client.Repositories.ListByAuthenticatedUser(ctx, &github.RepositoryListByAuthenticatedUserOptions{
		Sort:      "updated",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}

	result := make([]Repository, 0, len(repos))

	for _, r := range repos {
		repo := Repository{
			Owner:       r.GetOwner().GetLogin(),
			Name:        r.GetName(),
			FullName:    r.GetFullName(),
			Description: r.GetDescription(),
			Private:     r.GetPrivate(),
			HTMLURL:     r.GetHTMLURL(),
		}

		if r.UpdatedAt != nil {
			repo.UpdatedAt = r.UpdatedAt.Time
		}

		result = append(result, repo)
	}

	return result, nil
}

// fetches one file's decoded content. Directories and non-file entries
// report ErrFileNotFound so the locator moves on to its next candidate.
func (p *GitHubProvider) GetFileContent(ctx context.Context, token, owner, repo, path string) (string, error) {
	client := github.NewClient(nil).WithAuthToken(token)

	file, _, resp, err := client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", ErrFileNotFound
		}

		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return "", ErrFileNotFound
		}

		return "", fmt.Errorf("failed to fetch %s/%s/%s: %w", owner, repo, path, err)
	}

	// GetContents returns a directory listing instead of a file when the
	// path is a directory
	if file == nil || file.GetType() != "file" {
		return "", ErrFileNotFound
	}

	content, err := file.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode %s/%s/%s: %w", owner, repo, path, err)
	}

	return content, nil
}
