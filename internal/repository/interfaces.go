package repository

import (
	"context"

	"token-auth-backend/internal/database/models"
)

//go:generate mockgen -destination=../mocks/repository_mocks.go -package=mocks token-auth-backend/internal/repository TokenRepositoryInterface,UserRepositoryInterface

// TokenRepositoryInterface is the persistence contract for issued tokens
type TokenRepositoryInterface interface {
	ExistsForUser(ctx context.Context, userID uint) (bool, error)
	Create(ctx context.Context, token *models.TokenAuth) error
	CreateIfNoneForUser(ctx context.Context, token *models.TokenAuth) error
	FindUserIDByToken(ctx context.Context, token string) (uint, bool, error)
}

// UserRepositoryInterface is the read side of the external user store
type UserRepositoryInterface interface {
	Exists(ctx context.Context, id uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

var (
	_ TokenRepositoryInterface = (*TokenRepository)(nil)
	_ UserRepositoryInterface  = (*UserRepository)(nil)
)
