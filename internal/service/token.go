package service

import (
	"context"
	"errors"
	"fmt"

	"token-auth-backend/internal/database/models"
	apperrors "token-auth-backend/internal/errors"
	"token-auth-backend/internal/logger"
	"token-auth-backend/internal/metrics"
	"token-auth-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultMaxGenerateAttempts bounds regeneration after a token value clash
const DefaultMaxGenerateAttempts = 3

// TokenAuthOptions tunes issuance behaviour
type TokenAuthOptions struct {
	// AtomicOnePerUser runs the one-per-user check and the insert in a single
	// transaction holding a lock on the user row. When false the check and the
	// insert are separate statements and concurrent callers may both succeed.
	AtomicOnePerUser    bool
	MaxGenerateAttempts int
	// Generate produces token values. Defaults to uuid.NewString.
	Generate func() string
	Metrics  *metrics.TokenMetrics
}

// TokenAuthService issues opaque bearer tokens and resolves them to users
type TokenAuthService struct {
	tokenRepo   repository.TokenRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	validator   *validator.Validate
	atomic      bool
	maxAttempts int
	generate    func() string
	metrics     *metrics.TokenMetrics
}

// NewTokenAuthService creates a new token service
func NewTokenAuthService(tokenRepo repository.TokenRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate, opts TokenAuthOptions) *TokenAuthService {
	if opts.MaxGenerateAttempts <= 0 {
		opts.MaxGenerateAttempts = DefaultMaxGenerateAttempts
	}
	if opts.Generate == nil {
		opts.Generate = uuid.NewString
	}
	return &TokenAuthService{
		tokenRepo:   tokenRepo,
		userRepo:    userRepo,
		validator:   validator,
		atomic:      opts.AtomicOnePerUser,
		maxAttempts: opts.MaxGenerateAttempts,
		generate:    opts.Generate,
		metrics:     opts.Metrics,
	}
}

// CreateTokenRequest is the body of POST /api/v1/tokens
type CreateTokenRequest struct {
	UserID     uint  `json:"user_id" validate:"required,gt=0" example:"1"`
	OnePerUser *bool `json:"one_per_user,omitempty" example:"true"`
}

// CreateTokenResponse carries a newly issued token
type CreateTokenResponse struct {
	Token string `json:"token" example:"9b2f6c1e-4f0a-4c55-9d1e-2b1b0e8d7a31"`
}

// AuthenticateRequest is the body of POST /api/v1/tokens/authenticate
type AuthenticateRequest struct {
	Token string `json:"token" validate:"required" example:"9b2f6c1e-4f0a-4c55-9d1e-2b1b0e8d7a31"`
}

// AuthenticateResponse identifies the owner of a valid token
type AuthenticateResponse struct {
	UserID uint `json:"user_id" example:"1"`
}

// CreateTokenResult is delivered by CreateTokenAsync
type CreateTokenResult struct {
	Token string
	Err   error
}

// AuthenticateResult is delivered by AuthenticateAsync
type AuthenticateResult struct {
	UserID uint
	Found  bool
	Err    error
}

// CreateToken issues a new token for the user. With onePerUser set, it fails
// with a *apperrors.DuplicateTokenError when the user already holds a token.
func (s *TokenAuthService) CreateToken(ctx context.Context, userID uint, onePerUser bool) (string, error) {
	log := logger.New().WithField("user_id", userID)

	if err := s.validator.Var(userID, "required,gt=0"); err != nil {
		s.metrics.ObserveIssue(metrics.OutcomeInvalid)
		return "", apperrors.ErrUserIDMissing
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		s.metrics.ObserveIssue(metrics.OutcomeError)
		return "", fmt.Errorf("check user %d: %w", userID, err)
	}
	if !exists {
		s.metrics.ObserveIssue(metrics.OutcomeInvalid)
		return "", apperrors.ErrUserNotFound
	}

	if onePerUser && !s.atomic {
		has, err := s.tokenRepo.ExistsForUser(ctx, userID)
		if err != nil {
			s.metrics.ObserveIssue(metrics.OutcomeError)
			return "", err
		}
		if has {
			s.metrics.ObserveIssue(metrics.OutcomeDuplicate)
			return "", apperrors.NewDuplicateTokenError(userID)
		}
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		record := &models.TokenAuth{Token: s.generate(), UserID: userID}

		if onePerUser && s.atomic {
			err = s.tokenRepo.CreateIfNoneForUser(ctx, record)
		} else {
			err = s.tokenRepo.Create(ctx, record)
		}

		switch {
		case err == nil:
			s.metrics.ObserveIssue(metrics.OutcomeIssued)
			log.WithField("token_id", record.ID).Debug("token issued")
			return record.Token, nil
		case errors.Is(err, apperrors.ErrTokenCollision):
			s.metrics.ObserveCollision()
			log.WithField("attempt", attempt).Warn("generated token already in use, retrying")
		case apperrors.IsDuplicateToken(err):
			s.metrics.ObserveIssue(metrics.OutcomeDuplicate)
			return "", err
		case errors.Is(err, apperrors.ErrUserNotFound):
			s.metrics.ObserveIssue(metrics.OutcomeInvalid)
			return "", err
		default:
			s.metrics.ObserveIssue(metrics.OutcomeError)
			return "", err
		}
	}

	s.metrics.ObserveIssue(metrics.OutcomeError)
	log.WithField("attempts", s.maxAttempts).Error("could not generate a unique token")
	return "", apperrors.ErrTokenGenerationExceeded
}

// Authenticate resolves a token to its owner. An unknown or empty token is
// reported as found=false with a nil error.
func (s *TokenAuthService) Authenticate(ctx context.Context, token string) (uint, bool, error) {
	if token == "" {
		s.metrics.ObserveAuthenticate(metrics.OutcomeMissing)
		return 0, false, nil
	}

	userID, found, err := s.tokenRepo.FindUserIDByToken(ctx, token)
	if err != nil {
		s.metrics.ObserveAuthenticate(metrics.OutcomeError)
		return 0, false, err
	}
	if !found {
		s.metrics.ObserveAuthenticate(metrics.OutcomeMissing)
		return 0, false, nil
	}

	s.metrics.ObserveAuthenticate(metrics.OutcomeFound)
	logger.New().WithField("user_id", userID).Debug("token authenticated")
	return userID, true, nil
}

// CreateTokenAsync runs CreateToken in its own goroutine. The returned channel
// receives exactly one result and is then closed.
func (s *TokenAuthService) CreateTokenAsync(ctx context.Context, userID uint, onePerUser bool) <-chan CreateTokenResult {
	out := make(chan CreateTokenResult, 1)
	go func() {
		defer close(out)
		token, err := s.CreateToken(ctx, userID, onePerUser)
		out <- CreateTokenResult{Token: token, Err: err}
	}()
	return out
}

// AuthenticateAsync runs Authenticate in its own goroutine. The returned
// channel receives exactly one result and is then closed.
func (s *TokenAuthService) AuthenticateAsync(ctx context.Context, token string) <-chan AuthenticateResult {
	out := make(chan AuthenticateResult, 1)
	go func() {
		defer close(out)
		userID, found, err := s.Authenticate(ctx, token)
		out <- AuthenticateResult{UserID: userID, Found: found, Err: err}
	}()
	return out
}
