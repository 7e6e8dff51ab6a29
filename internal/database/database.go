package database

import (
	"fmt"
	"strings"
	"time"

	"token-auth-backend/internal/database/models"
	apperrors "token-auth-backend/internal/errors"
	"token-auth-backend/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        gormlogger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// SkipMigrate leaves the schema untouched; used when migrations run out of band
	SkipMigrate bool
}

// ParseLogLevel maps a config string onto a gorm log level
func ParseLogLevel(s string) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return gormlogger.Silent
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Error
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	log := logger.New()
	log.Info("Initializing database...")
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = gormlogger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDatabaseConnection, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	log.Info("Initializing database done.")
	return db, nil
}

// Migrate creates or updates the users and token_auth tables and their indexes
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.TokenAuth{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	if err := CreateIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func CreateIndexes(db *gorm.DB) error {
	// Tokens are looked up by value on every authentication
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS token_auth_token_unique ON token_auth (token)`).Error; err != nil {
		return fmt.Errorf("create unique index token_auth.token: %w", err)
	}
	// One-per-user checks filter by owner
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_token_auth_user_id ON token_auth (user_id)`).Error; err != nil {
		return fmt.Errorf("create index token_auth.user_id: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
