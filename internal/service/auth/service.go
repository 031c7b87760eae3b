package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wmoldes/roster-backend/internal/domain/auth"
	"github.com/wmoldes/roster-backend/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	jwt.Service
	passwordHash []byte
}

// NewAuthService checks admin logins against a bcrypt hash of the shared password.
func NewAuthService(jwtService jwt.Service, passwordHash string) auth.AuthService {
	return &AuthServiceImpl{
		Service:      jwtService,
		passwordHash: []byte(passwordHash),
	}
}

// HashPassword returns the bcrypt hash used to configure the admin password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// AdminLogin implements auth.AuthService.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			slog.Warn("Rejected admin login")
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("compare admin password: %w", err)
	}

	token, expiresAt, err := a.GenerateAdminToken()
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate admin token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	decoded, err := a.JWTAuth().Decode(token)
	if err != nil {
		return auth.ErrInvalidToken
	}
	a.RevokeToken(token, decoded.Expiration().Unix())
	return nil
}
