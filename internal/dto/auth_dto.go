package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	Identity  string `json:"identity"`   // stats ledger user key (email or provider identity)
	Role      string `json:"role"`       // "admin" or "user"
	TokenType string `json:"token_type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// AdminLoginRequest is the admin credential pair.
// @Description Request body for admin login
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse represents the response containing access and refresh tokens.
// @Description Response body for authentication tokens
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
	Identity     string `json:"identity"`
}

// RefreshTokenRequest represents the request body for refreshing a token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LoginURLResponse carries the provider's authorization URL for the
// non-mock sign-in path.
type LoginURLResponse struct {
	URL string `json:"url"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}
