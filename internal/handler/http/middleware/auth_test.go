package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmoldes/roster-backend/internal/pkg/jwt"
)

func newProtectedRouter(jwtService jwt.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService))
	r.Use(AdminOnly)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func serve(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAdminChain(t *testing.T) {
	jwtService := jwt.NewJWTService("middleware-test-secret", "1h")
	router := newProtectedRouter(jwtService)

	adminToken, expiresAt, err := jwtService.GenerateAdminToken()
	require.NoError(t, err)

	_, viewerToken, err := jwtService.JWTAuth().Encode(map[string]interface{}{
		"sub":  "viewer",
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	_, refreshToken, err := jwtService.JWTAuth().Encode(map[string]interface{}{
		"is_admin": true,
		"type":     "refresh",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, serve(router, adminToken).Code)
	assert.Equal(t, http.StatusForbidden, serve(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, "not-a-jwt").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, refreshToken).Code)
	assert.Equal(t, http.StatusForbidden, serve(router, viewerToken).Code)

	jwtService.RevokeToken(adminToken, expiresAt)
	assert.Equal(t, http.StatusUnauthorized, serve(router, adminToken).Code)
}
