package auth

import "github.com/codesentinel/server/codesentinel/users"

// AuthResponse returned after successful OAuth callback. GithubToken is
// only set for GitHub logins; the demo dashboard passes it back on every
// repository call, the server never stores it.
type AuthResponse struct {
	User        *users.User `json:"user"`
	Token       string      `json:"token"`
	GithubToken string      `json:"github_token,omitempty"`
}

// UserResponse wraps user data
type UserResponse struct {
	User *users.User `json:"user"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
