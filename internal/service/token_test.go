package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"token-auth-backend/internal/database/models"
	apperrors "token-auth-backend/internal/errors"
	"token-auth-backend/internal/metrics"
	"token-auth-backend/internal/mocks"
	"token-auth-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TokenAuthServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	tokenRepo *mocks.MockTokenRepositoryInterface
	userRepo  *mocks.MockUserRepositoryInterface
	ctx       context.Context
}

func (suite *TokenAuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.tokenRepo = mocks.NewMockTokenRepositoryInterface(suite.ctrl)
	suite.userRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.ctx = context.Background()
}

func (suite *TokenAuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// sequence returns a generator yielding the given values in order
func sequence(values ...string) func() string {
	i := 0
	return func() string {
		v := values[i%len(values)]
		i++
		return v
	}
}

func (suite *TokenAuthServiceTestSuite) newService(atomic bool, gen func() string) *service.TokenAuthService {
	return service.NewTokenAuthService(suite.tokenRepo, suite.userRepo, validator.New(), service.TokenAuthOptions{
		AtomicOnePerUser: atomic,
		Generate:         gen,
		Metrics:          metrics.NewTokenMetrics(),
	})
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_Success() {
	svc := suite.newService(true, sequence("tok-1"))

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(7)).Return(true, nil)
	suite.tokenRepo.EXPECT().Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *models.TokenAuth) error {
			suite.Equal("tok-1", rec.Token)
			suite.Equal(uint(7), rec.UserID)
			return nil
		})

	token, err := svc.CreateToken(suite.ctx, 7, false)

	suite.Require().NoError(err)
	suite.Equal("tok-1", token)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_DefaultGeneratorProducesDistinctTokens() {
	svc := service.NewTokenAuthService(suite.tokenRepo, suite.userRepo, validator.New(), service.TokenAuthOptions{})

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil).Times(2)
	suite.tokenRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil).Times(2)

	first, err := svc.CreateToken(suite.ctx, 1, false)
	suite.Require().NoError(err)
	second, err := svc.CreateToken(suite.ctx, 1, false)
	suite.Require().NoError(err)

	suite.NotEmpty(first)
	suite.NotEqual(first, second)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_InvalidUserID() {
	svc := suite.newService(true, nil)

	token, err := svc.CreateToken(suite.ctx, 0, true)

	suite.Empty(token)
	suite.True(apperrors.IsValidation(err))
	suite.ErrorIs(err, apperrors.ErrUserIDMissing)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_UnknownUser() {
	svc := suite.newService(true, nil)

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(42)).Return(false, nil)

	token, err := svc.CreateToken(suite.ctx, 42, true)

	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_UserStoreFailure() {
	svc := suite.newService(true, nil)
	dbErr := errors.New("connection refused")

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(3)).Return(false, dbErr)

	_, err := svc.CreateToken(suite.ctx, 3, false)

	suite.ErrorIs(err, dbErr)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_OnePerUserAtomic() {
	svc := suite.newService(true, sequence("tok-a"))

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(5)).Return(true, nil)
	suite.tokenRepo.EXPECT().CreateIfNoneForUser(suite.ctx, gomock.Any()).Return(nil)

	token, err := svc.CreateToken(suite.ctx, 5, true)

	suite.Require().NoError(err)
	suite.Equal("tok-a", token)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_OnePerUserAtomicDuplicate() {
	svc := suite.newService(true, sequence("tok-a"))

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(5)).Return(true, nil)
	suite.tokenRepo.EXPECT().CreateIfNoneForUser(suite.ctx, gomock.Any()).
		Return(apperrors.NewDuplicateTokenError(5))

	token, err := svc.CreateToken(suite.ctx, 5, true)

	suite.Empty(token)
	suite.True(apperrors.IsDuplicateToken(err))
	suite.ErrorIs(err, apperrors.ErrDuplicateToken)

	var dup *apperrors.DuplicateTokenError
	suite.Require().ErrorAs(err, &dup)
	suite.Equal(uint(5), dup.UserID)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_OnePerUserCheckThenInsert() {
	svc := suite.newService(false, sequence("tok-b"))

	gomock.InOrder(
		suite.userRepo.EXPECT().Exists(suite.ctx, uint(9)).Return(true, nil),
		suite.tokenRepo.EXPECT().ExistsForUser(suite.ctx, uint(9)).Return(false, nil),
		suite.tokenRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil),
	)

	token, err := svc.CreateToken(suite.ctx, 9, true)

	suite.Require().NoError(err)
	suite.Equal("tok-b", token)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_OnePerUserCheckThenInsertDuplicate() {
	svc := suite.newService(false, nil)

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(9)).Return(true, nil)
	suite.tokenRepo.EXPECT().ExistsForUser(suite.ctx, uint(9)).Return(true, nil)

	token, err := svc.CreateToken(suite.ctx, 9, true)

	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrDuplicateToken)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_ManyTokensWithoutOnePerUser() {
	svc := suite.newService(true, sequence("t1", "t2"))

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(2)).Return(true, nil).Times(2)
	suite.tokenRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil).Times(2)
	suite.tokenRepo.EXPECT().ExistsForUser(gomock.Any(), gomock.Any()).Times(0)

	first, err := svc.CreateToken(suite.ctx, 2, false)
	suite.Require().NoError(err)
	second, err := svc.CreateToken(suite.ctx, 2, false)
	suite.Require().NoError(err)

	suite.Equal("t1", first)
	suite.Equal("t2", second)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_RetriesOnCollision() {
	svc := suite.newService(true, sequence("dup", "fresh"))

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(4)).Return(true, nil)
	gomock.InOrder(
		suite.tokenRepo.EXPECT().Create(suite.ctx, gomock.Any()).
			Return(fmt.Errorf("%w: duplicate key", apperrors.ErrTokenCollision)),
		suite.tokenRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil),
	)

	token, err := svc.CreateToken(suite.ctx, 4, false)

	suite.Require().NoError(err)
	suite.Equal("fresh", token)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_CollisionAttemptsExhausted() {
	svc := suite.newService(true, sequence("dup"))

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(4)).Return(true, nil)
	suite.tokenRepo.EXPECT().Create(suite.ctx, gomock.Any()).
		Return(apperrors.ErrTokenCollision).
		Times(service.DefaultMaxGenerateAttempts)

	token, err := svc.CreateToken(suite.ctx, 4, false)

	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrTokenGenerationExceeded)
}

func (suite *TokenAuthServiceTestSuite) TestCreateToken_StoreFailureNotRetried() {
	svc := suite.newService(true, nil)
	dbErr := errors.New("insert token: deadlock detected")

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(4)).Return(true, nil)
	suite.tokenRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(dbErr).Times(1)

	_, err := svc.CreateToken(suite.ctx, 4, false)

	suite.ErrorIs(err, dbErr)
}

func (suite *TokenAuthServiceTestSuite) TestAuthenticate_Found() {
	svc := suite.newService(true, nil)

	suite.tokenRepo.EXPECT().FindUserIDByToken(suite.ctx, "abc").Return(uint(11), true, nil)

	userID, found, err := svc.Authenticate(suite.ctx, "abc")

	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(uint(11), userID)
}

func (suite *TokenAuthServiceTestSuite) TestAuthenticate_Unknown() {
	svc := suite.newService(true, nil)

	suite.tokenRepo.EXPECT().FindUserIDByToken(suite.ctx, "nope").Return(uint(0), false, nil)

	userID, found, err := svc.Authenticate(suite.ctx, "nope")

	suite.Require().NoError(err)
	suite.False(found)
	suite.Zero(userID)
}

func (suite *TokenAuthServiceTestSuite) TestAuthenticate_EmptyTokenSkipsStore() {
	svc := suite.newService(true, nil)

	suite.tokenRepo.EXPECT().FindUserIDByToken(gomock.Any(), gomock.Any()).Times(0)

	userID, found, err := svc.Authenticate(suite.ctx, "")

	suite.Require().NoError(err)
	suite.False(found)
	suite.Zero(userID)
}

func (suite *TokenAuthServiceTestSuite) TestAuthenticate_StoreFailure() {
	svc := suite.newService(true, nil)
	dbErr := errors.New("lookup token: timeout")

	suite.tokenRepo.EXPECT().FindUserIDByToken(suite.ctx, "abc").Return(uint(0), false, dbErr)

	_, found, err := svc.Authenticate(suite.ctx, "abc")

	suite.False(found)
	suite.ErrorIs(err, dbErr)
}

func (suite *TokenAuthServiceTestSuite) TestAsyncMatchesSync() {
	svc := suite.newService(true, sequence("same"))

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(8)).Return(true, nil).Times(2)
	suite.tokenRepo.EXPECT().CreateIfNoneForUser(suite.ctx, gomock.Any()).Return(nil).Times(2)
	suite.tokenRepo.EXPECT().FindUserIDByToken(suite.ctx, "same").Return(uint(8), true, nil).Times(2)

	syncToken, syncErr := svc.CreateToken(suite.ctx, 8, true)
	asyncRes := <-svc.CreateTokenAsync(suite.ctx, 8, true)
	suite.Equal(syncErr, asyncRes.Err)
	suite.Equal(syncToken, asyncRes.Token)

	syncID, syncFound, syncErr := svc.Authenticate(suite.ctx, "same")
	authRes := <-svc.AuthenticateAsync(suite.ctx, "same")
	suite.Equal(syncErr, authRes.Err)
	suite.Equal(syncFound, authRes.Found)
	suite.Equal(syncID, authRes.UserID)
}

func (suite *TokenAuthServiceTestSuite) TestAsyncDuplicate() {
	svc := suite.newService(false, nil)

	suite.userRepo.EXPECT().Exists(suite.ctx, uint(8)).Return(true, nil)
	suite.tokenRepo.EXPECT().ExistsForUser(suite.ctx, uint(8)).Return(true, nil)

	res := <-svc.CreateTokenAsync(suite.ctx, 8, true)

	suite.Empty(res.Token)
	suite.ErrorIs(res.Err, apperrors.ErrDuplicateToken)
}

func TestTokenAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenAuthServiceTestSuite))
}

func TestAsyncChannelClosedAfterResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenRepo := mocks.NewMockTokenRepositoryInterface(ctrl)
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := service.NewTokenAuthService(tokenRepo, userRepo, validator.New(), service.TokenAuthOptions{})

	ch := svc.AuthenticateAsync(context.Background(), "")

	res, ok := <-ch
	require.True(t, ok)
	assert.False(t, res.Found)

	_, ok = <-ch
	assert.False(t, ok)
}
