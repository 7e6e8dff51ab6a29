package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this user"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// DuplicateTokenError is returned when a single token per user was requested
// and the user already holds one.
type DuplicateTokenError struct {
	UserID uint
}

func (e *DuplicateTokenError) Error() string {
	return fmt.Sprintf("user %d already has a token", e.UserID)
}

// Is matches any DuplicateTokenError and the ErrDuplicateToken sentinel.
func (e *DuplicateTokenError) Is(target error) bool {
	if target == ErrDuplicateToken {
		return true
	}
	t, ok := target.(*DuplicateTokenError)
	if !ok {
		return false
	}
	return t.UserID == 0 || t.UserID == e.UserID
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound  = &NotFoundError{Entity: "user"}
	ErrTokenNotFound = &NotFoundError{Entity: "token"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this username"}
)

// Token Errors
var (
	ErrDuplicateToken          = errors.New("user already has a token")
	ErrTokenGenerationExceeded = errors.New("could not generate a unique token")
	ErrTokenCollision          = errors.New("token value already in use")
	ErrInvalidJSON             = errors.New("invalid JSON")
)

// Configuration Errors
var (
	ErrDatabaseURLMissing   = &ConfigurationError{Message: "database url is not configured"}
	ErrDatabaseConnection   = &ConfigurationError{Message: "database connection failed"}
	ErrInvalidLogLevel      = &ConfigurationError{Message: "invalid log level"}
	ErrInvalidGenerateTries = &ConfigurationError{Message: "token_auth.max_generate_attempts must be positive"}
)

// Validation Errors
var (
	ErrUserIDMissing = &ValidationError{Field: "user_id", Message: "user_id must be a positive integer"}
	ErrTokenMissing  = &ValidationError{Field: "token", Message: "token cannot be empty"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsDuplicateToken checks if an error is a DuplicateTokenError
func IsDuplicateToken(err error) bool {
	var dupErr *DuplicateTokenError
	return errors.As(err, &dupErr) || errors.Is(err, ErrDuplicateToken)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewDuplicateTokenError creates a DuplicateTokenError for the given user
func NewDuplicateTokenError(userID uint) error {
	return &DuplicateTokenError{UserID: userID}
}

