package admin

import "github.com/codesentinel/server/codesentinel/users"

// UpdateAccessRequest toggles a subscriber's access
type UpdateAccessRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// UsersResponse wraps the full user listing
type UsersResponse struct {
	Users []users.User `json:"users"`
}

// UserResponse wraps one updated user record
type UserResponse struct {
	User *users.User `json:"user"`
}
