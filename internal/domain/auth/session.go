package auth

import (
	"context"
	"time"
)

// Session is the persisted authentication context: one row per issued
// refresh token, created on login and revoked on logout.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// SessionRepository defines the interface for session persistence
type SessionRepository interface {
	Store(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
