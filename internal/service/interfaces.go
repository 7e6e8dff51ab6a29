package service

import "context"

//go:generate mockgen -destination=../mocks/service_mocks.go -package=mocks token-auth-backend/internal/service TokenAuthServiceInterface

// TokenAuthServiceInterface is consumed by the HTTP handlers and the CLI
type TokenAuthServiceInterface interface {
	CreateToken(ctx context.Context, userID uint, onePerUser bool) (string, error)
	Authenticate(ctx context.Context, token string) (uint, bool, error)
	CreateTokenAsync(ctx context.Context, userID uint, onePerUser bool) <-chan CreateTokenResult
	AuthenticateAsync(ctx context.Context, token string) <-chan AuthenticateResult
}

var _ TokenAuthServiceInterface = (*TokenAuthService)(nil)
