package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainhub/training-backend-go/internal/domain/auth"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/pkg/jwt"
)

type fakeProfileRepo struct {
	byEmail map[string]*profile.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p profile.Profile) (*profile.Profile, error) {
	return &p, nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	for _, p := range f.byEmail {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	if p, ok := f.byEmail[strings.ToLower(email)]; ok {
		return p, nil
	}
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) List(ctx context.Context, filter profile.ListFilter) ([]profile.Profile, int64, error) {
	return nil, 0, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p profile.Profile) (*profile.Profile, error) {
	return &p, nil
}

func (f *fakeProfileRepo) SetStatus(ctx context.Context, id string, status profile.Status) error {
	return nil
}

func (f *fakeProfileRepo) SoftDelete(ctx context.Context, id string) error { return nil }

type fakeSessionRepo struct {
	sessions map[string]*auth.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*auth.Session)}
}

func (f *fakeSessionRepo) Store(ctx context.Context, s auth.Session) error {
	f.sessions[s.Token] = &s
	return nil
}

func (f *fakeSessionRepo) Get(ctx context.Context, token string) (*auth.Session, error) {
	if s, ok := f.sessions[token]; ok {
		return s, nil
	}
	return nil, auth.ErrSessionNotFound
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	s, ok := f.sessions[token]
	if !ok {
		return auth.ErrSessionNotFound
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}

func (f *fakeSessionRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	now := time.Now()
	for _, s := range f.sessions {
		if s.UserID == userID {
			s.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func newTestService(profiles *fakeProfileRepo, sessions *fakeSessionRepo) auth.AuthService {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewAuthService(profiles, sessions, jwtService)
}

func activeProfile(id, email string) *profile.Profile {
	return &profile.Profile{
		ID:     id,
		Name:   "User " + id,
		Email:  email,
		Role:   profile.RoleEmployee,
		Status: profile.StatusActive,
	}
}

func TestLoginWithActiveProfile(t *testing.T) {
	profiles := &fakeProfileRepo{byEmail: map[string]*profile.Profile{
		"alice@example.com": activeProfile("u1", "alice@example.com"),
	}}
	sessions := newFakeSessionRepo()
	svc := newTestService(profiles, sessions)

	resp, refreshToken, refreshExp, err := svc.Login(context.Background(), auth.LoginRequest{Email: "Alice@Example.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "u1", resp.Profile.ID)
	assert.NotEmpty(t, refreshToken)
	assert.Greater(t, refreshExp, time.Now().Unix())

	// One session row is persisted per login.
	require.Len(t, sessions.sessions, 1)
	assert.Equal(t, "u1", sessions.sessions[refreshToken].UserID)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(&fakeProfileRepo{byEmail: map[string]*profile.Profile{}}, newFakeSessionRepo())

	_, _, _, err := svc.Login(context.Background(), auth.LoginRequest{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveProfile(t *testing.T) {
	inactive := activeProfile("u2", "bob@example.com")
	inactive.Status = profile.StatusInactive
	profiles := &fakeProfileRepo{byEmail: map[string]*profile.Profile{
		"bob@example.com": inactive,
	}}

	svc := newTestService(profiles, newFakeSessionRepo())
	_, _, _, err := svc.Login(context.Background(), auth.LoginRequest{Email: "bob@example.com"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshAfterLogin(t *testing.T) {
	profiles := &fakeProfileRepo{byEmail: map[string]*profile.Profile{
		"alice@example.com": activeProfile("u1", "alice@example.com"),
	}}
	sessions := newFakeSessionRepo()
	svc := newTestService(profiles, sessions)

	_, refreshToken, _, err := svc.Login(context.Background(), auth.LoginRequest{Email: "alice@example.com"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRevokedSession(t *testing.T) {
	profiles := &fakeProfileRepo{byEmail: map[string]*profile.Profile{
		"alice@example.com": activeProfile("u1", "alice@example.com"),
	}}
	sessions := newFakeSessionRepo()
	svc := newTestService(profiles, sessions)

	_, refreshToken, _, err := svc.Login(context.Background(), auth.LoginRequest{Email: "alice@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), refreshToken))

	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshUnknownToken(t *testing.T) {
	svc := newTestService(&fakeProfileRepo{byEmail: map[string]*profile.Profile{}}, newFakeSessionRepo())

	_, err := svc.Refresh(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutWithoutTokenIsNoop(t *testing.T) {
	svc := newTestService(&fakeProfileRepo{byEmail: map[string]*profile.Profile{}}, newFakeSessionRepo())
	assert.NoError(t, svc.Logout(context.Background(), ""))
}
