package repository

import (
	"context"
	"errors"
	"fmt"

	"token-auth-backend/internal/database/models"
	apperrors "token-auth-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	pgUniqueViolation   = "23505"
	tokenUniqueIndex    = "token_auth_token_unique"
	pgForeignKeyViolate = "23503"
)

// TokenRepository handles database operations for bearer tokens
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// ExistsForUser reports whether the user holds at least one token
func (r *TokenRepository) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TokenAuth{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count tokens for user %d: %w", userID, err)
	}
	return count > 0, nil
}

// Create inserts the token record. A clash on the token value is reported as
// apperrors.ErrTokenCollision so callers can retry with a fresh value.
func (r *TokenRepository) Create(ctx context.Context, token *models.TokenAuth) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return translateInsertError(err)
	}
	return nil
}

// CreateIfNoneForUser inserts the token only when the user holds none.
// The user row is locked for the duration of the transaction, so concurrent
// callers for the same user are serialised.
func (r *TokenRepository) CreateIfNoneForUser(ctx context.Context, token *models.TokenAuth) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", token.UserID).
			Take(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("lock user %d: %w", token.UserID, err)
		}

		var count int64
		if err := tx.Model(&models.TokenAuth{}).
			Where("user_id = ?", token.UserID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("count tokens for user %d: %w", token.UserID, err)
		}
		if count > 0 {
			return apperrors.NewDuplicateTokenError(token.UserID)
		}

		if err := tx.Create(token).Error; err != nil {
			return translateInsertError(err)
		}
		return nil
	})
}

// FindUserIDByToken returns the owner of the token; found is false when no
// record matches.
func (r *TokenRepository) FindUserIDByToken(ctx context.Context, token string) (uint, bool, error) {
	var rec models.TokenAuth
	err := r.db.WithContext(ctx).
		Select("user_id").
		Where("token = ?", token).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("lookup token: %w", err)
	}
	return rec.UserID, true, nil
}

func translateInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == tokenUniqueIndex:
			return fmt.Errorf("%w: %s", apperrors.ErrTokenCollision, pgErr.Message)
		case pgErr.Code == pgForeignKeyViolate:
			return apperrors.ErrUserNotFound
		}
	}
	return fmt.Errorf("insert token: %w", err)
}
