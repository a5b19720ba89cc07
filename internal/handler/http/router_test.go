package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/handler/http/middleware"
	"github.com/trainhub/training-backend-go/internal/pkg/jwt"
)

func protectedMux(jwtService jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

		r.Get("/mine", func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(middleware.UserID(req)))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly)
			r.Get("/admin", func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})
	return r
}

func accessTokenFor(t *testing.T, jwtService jwt.Service, p profile.Profile) string {
	token, _, err := jwtService.GenerateAccessToken(p)
	require.NoError(t, err)
	return token
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("router-test-secret", "1h", "24h")
	mux := protectedMux(jwtService)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mine", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsRefreshToken(t *testing.T) {
	jwtService := jwt.NewJWTService("router-test-secret", "1h", "24h")
	mux := protectedMux(jwtService)

	// A refresh token carries type=refresh and must not pass as access.
	refresh, _, err := jwtService.GenerateRefreshToken("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/mine", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserIDFromAccessToken(t *testing.T) {
	jwtService := jwt.NewJWTService("router-test-secret", "1h", "24h")
	mux := protectedMux(jwtService)

	token := accessTokenFor(t, jwtService, profile.Profile{
		ID:     "u1",
		Email:  "alice@example.com",
		Name:   "Alice",
		Role:   profile.RoleEmployee,
		Status: profile.StatusActive,
	})

	req := httptest.NewRequest(http.MethodGet, "/mine", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
}

func TestAdminOnlyByRole(t *testing.T) {
	jwtService := jwt.NewJWTService("router-test-secret", "1h", "24h")
	mux := protectedMux(jwtService)

	employee := accessTokenFor(t, jwtService, profile.Profile{
		ID: "u1", Email: "e@example.com", Name: "E", Role: profile.RoleEmployee, Status: profile.StatusActive,
	})
	admin := accessTokenFor(t, jwtService, profile.Profile{
		ID: "u2", Email: "a@example.com", Name: "A", Role: profile.RoleAdmin, Status: profile.StatusActive,
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+employee)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
