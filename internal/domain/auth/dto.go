package auth

import "github.com/trainhub/training-backend-go/internal/domain/profile"

// LoginRequest carries the email-existence login. Identity is an email
// lookup against active profiles; there is no password.
type LoginRequest struct {
	Email string `json:"email"`
}

type LoginResponse struct {
	AccessToken string                  `json:"access_token"`
	ExpiresAt   int64                   `json:"expires_at"`
	Profile     profile.ProfileResponse `json:"profile"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
