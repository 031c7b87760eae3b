package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmoldes/roster-backend/internal/domain/auth"
	"github.com/wmoldes/roster-backend/internal/pkg/jwt"
	"github.com/wmoldes/roster-backend/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
	testPassword  = "admin123"
)

func newTestAuthService(t *testing.T) (auth.AuthService, *jwt.JWTService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService(testSecret, testAccessExp)
	return NewAuthService(jwtSvc, string(hash)), jwtSvc
}

func TestAdminLogin_Success(t *testing.T) {
	svc, jwtSvc := newTestAuthService(t)

	resp, err := svc.AdminLogin(context.Background(), auth.AdminLoginRequest{Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)

	token, err := jwtSvc.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	isAdmin, ok := token.Get("is_admin")
	require.True(t, ok)
	assert.Equal(t, true, isAdmin)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.AdminLogin(context.Background(), auth.AdminLoginRequest{Password: "guess"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAdminLogin_EmptyPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.AdminLogin(context.Background(), auth.AdminLoginRequest{})
	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, jwtSvc := newTestAuthService(t)

	resp, err := svc.AdminLogin(context.Background(), auth.AdminLoginRequest{Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.AccessToken))
	assert.True(t, jwtSvc.IsTokenRevoked(resp.AccessToken))

	assert.ErrorIs(t, svc.Logout(context.Background(), "garbage"), auth.ErrInvalidToken)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword(testPassword)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(testPassword)))
}
