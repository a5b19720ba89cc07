package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("no active profile for this email")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrSessionNotFound     = errors.New("session not found")
)
