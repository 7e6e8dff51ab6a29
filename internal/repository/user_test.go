package repository

import (
	"context"
	"errors"
	"testing"

	"token-auth-backend/internal/database/models"
	apperrors "token-auth-backend/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE id = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID(t *testing.T) {
	query := `SELECT \* FROM "users" WHERE id = \$1`

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		rows := sqlmock.NewRows([]string{"id", "username", "email", "active", "admin"}).
			AddRow(7, "alice", "alice@example.com", true, false)
		mock.ExpectQuery(query).WillReturnRows(rows)

		user, err := repo.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.True(t, user.Active)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, err := repo.GetByID(context.Background(), 7)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("store error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		mock.ExpectQuery(query).WillReturnError(errors.New("timeout"))

		_, err := repo.GetByID(context.Background(), 7)
		require.Error(t, err)
		assert.False(t, apperrors.IsNotFound(err))
	})
}

func TestUserRepository_GetByUsername_Normalizes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(3, "bob"))

	user, err := repo.GetByUsername(context.Background(), "  BoB ")
	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)
}

func TestUserRepository_Create(t *testing.T) {
	insert := `INSERT INTO "users"`

	t.Run("lowercases username", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(insert).
			WithArgs("alice", "", true, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		user := &models.User{Username: " Alice", Active: true}
		require.NoError(t, repo.Create(context.Background(), user))
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, uint(1), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(insert).WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		err := repo.Create(context.Background(), &models.User{Username: "alice"})
		assert.ErrorIs(t, err, apperrors.ErrUserExists)
	})
}
