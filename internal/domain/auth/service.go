package auth

import (
	"context"
)

type AuthService interface {
	// AdminLogin exchanges the shared admin password for an admin token
	AdminLogin(ctx context.Context, req AdminLoginRequest) (TokenResponse, error)
	// Logout revokes the given token
	Logout(ctx context.Context, token string) error
}
