package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/trainhub/training-backend-go/internal/domain/auth"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	profileRepo profile.ProfileRepository
	sessionRepo auth.SessionRepository
	jwtService  jwt.Service
}

func NewAuthService(profileRepo profile.ProfileRepository, sessionRepo auth.SessionRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

// Login resolves the email against active profiles and opens a session.
// Unknown emails and inactive profiles both map to the same credential
// error so the response does not leak which of the two failed.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, string, int64, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	p, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, "", 0, auth.ErrInvalidCredentials
		}
		return nil, "", 0, fmt.Errorf("failed to resolve profile: %w", err)
	}
	if p.Status != profile.StatusActive {
		return nil, "", 0, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(*p)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(p.ID)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := auth.Session{
		Token:     refreshToken,
		UserID:    p.ID,
		ExpiresAt: time.Unix(refreshExp, 0),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Store(ctx, session); err != nil {
		return nil, "", 0, fmt.Errorf("failed to store session: %w", err)
	}

	return &auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExp,
		Profile:     profile.ToResponse(*p),
	}, refreshToken, refreshExp, nil
}

// Refresh exchanges an unrevoked, unexpired refresh token for a new
// access token. The session row is the source of truth; the in-memory
// revocation map only short-circuits tokens revoked in this process.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.RefreshResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return nil, auth.ErrRefreshTokenRevoked
	}

	session, err := s.sessionRepo.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if session.RevokedAt != nil {
		return nil, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, auth.ErrTokenExpired
	}

	p, err := s.profileRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve profile: %w", err)
	}
	if p.Status != profile.StatusActive {
		return nil, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(*p)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout revokes the session behind the refresh token. Revoking an
// already-revoked or unknown token is not an error.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)

	if err := s.sessionRepo.Revoke(ctx, refreshToken); err != nil && !errors.Is(err, auth.ErrSessionNotFound) {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
