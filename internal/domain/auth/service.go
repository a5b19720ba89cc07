package auth

import "context"

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login resolves an active profile by email and opens a session.
	// Returns the access token plus the refresh token to be set as a
	// cookie by the handler.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, string, int64, error)

	// Refresh exchanges a valid, unrevoked refresh token for a new access
	// token.
	Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error)

	// Logout revokes the session behind the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
