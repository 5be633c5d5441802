package auth

import "github.com/golang-jwt/jwt/v5"

// JWT claims issued after a successful OAuth login
type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
