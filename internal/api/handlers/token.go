package handlers

import (
	"errors"
	"net/http"

	apperrors "token-auth-backend/internal/errors"
	"token-auth-backend/internal/logger"
	"token-auth-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TokenHandler handles HTTP requests for bearer token issuance and lookup
type TokenHandler struct {
	tokenService      service.TokenAuthServiceInterface
	validator         *validator.Validate
	onePerUserDefault bool
}

// NewTokenHandler creates a new token handler. onePerUserDefault applies when
// a create request omits one_per_user.
func NewTokenHandler(tokenService service.TokenAuthServiceInterface, validator *validator.Validate, onePerUserDefault bool) *TokenHandler {
	return &TokenHandler{
		tokenService:      tokenService,
		validator:         validator,
		onePerUserDefault: onePerUserDefault,
	}
}

// CreateToken handles POST /tokens
// @Summary Issue a bearer token
// @Description Issue a new opaque token for an existing user. With one_per_user=true the request fails when the user already holds a token.
// @Tags tokens
// @Accept json
// @Produce json
// @Param request body service.CreateTokenRequest true "Token creation request"
// @Success 201 {object} service.CreateTokenResponse "Token issued"
// @Failure 400 {object} map[string]interface{} "Invalid request body or validation error"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 409 {object} map[string]interface{} "User already holds a token"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tokens [post]
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var req service.CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidJSON.Error(), "details": err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrUserIDMissing.Error(), "details": err.Error()})
		return
	}

	onePerUser := h.onePerUserDefault
	if req.OnePerUser != nil {
		onePerUser = *req.OnePerUser
	}

	token, err := h.tokenService.CreateToken(c.Request.Context(), req.UserID, onePerUser)
	if err != nil {
		h.writeError(c, err, "Failed to create token")
		return
	}

	c.JSON(http.StatusCreated, service.CreateTokenResponse{Token: token})
}

// Authenticate handles POST /tokens/authenticate
// @Summary Resolve a bearer token
// @Description Look up the user that owns the given token
// @Tags tokens
// @Accept json
// @Produce json
// @Param request body service.AuthenticateRequest true "Token lookup request"
// @Success 200 {object} service.AuthenticateResponse "Token is valid"
// @Failure 400 {object} map[string]interface{} "Invalid request body or validation error"
// @Failure 404 {object} map[string]interface{} "Unknown token"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tokens/authenticate [post]
func (h *TokenHandler) Authenticate(c *gin.Context) {
	var req service.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidJSON.Error(), "details": err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrTokenMissing.Error(), "details": err.Error()})
		return
	}

	userID, found, err := h.tokenService.Authenticate(c.Request.Context(), req.Token)
	if err != nil {
		h.writeError(c, err, "Failed to authenticate token")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrTokenNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, service.AuthenticateResponse{UserID: userID})
}

func (h *TokenHandler) writeError(c *gin.Context, err error, message string) {
	var dup *apperrors.DuplicateTokenError
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "user_id": dup.UserID})
	case apperrors.IsDuplicateToken(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.FromGinContext(c).WithError(err).Error(message)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
