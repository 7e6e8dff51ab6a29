package routes

import (
	"token-auth-backend/internal/api/handlers"
	"token-auth-backend/internal/api/middleware"
	"token-auth-backend/internal/config"
	"token-auth-backend/internal/metrics"
	"token-auth-backend/internal/repository"
	"token-auth-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewTokenAuthService wires the token service against the database
func NewTokenAuthService(db *gorm.DB, cfg *config.Config, tokenMetrics *metrics.TokenMetrics) *service.TokenAuthService {
	return service.NewTokenAuthService(
		repository.NewTokenRepository(db),
		repository.NewUserRepository(db),
		validator.New(),
		service.TokenAuthOptions{
			AtomicOnePerUser:    cfg.TokenAuth.AtomicOnePerUser,
			MaxGenerateAttempts: cfg.TokenAuth.MaxGenerateAttempts,
			Metrics:             tokenMetrics,
		},
	)
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, tokenMetrics *metrics.TokenMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if tokenMetrics == nil {
		tokenMetrics = metrics.NewTokenMetrics()
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	tokenService := NewTokenAuthService(db, cfg, tokenMetrics)

	healthHandler := handlers.NewHealthHandler(db)
	tokenHandler := handlers.NewTokenHandler(tokenService, validator.New(), cfg.TokenAuth.OnePerUserDefault)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(tokenMetrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		tokens := v1.Group("/tokens")
		{
			tokens.POST("", tokenHandler.CreateToken)
			tokens.POST("/authenticate", tokenHandler.Authenticate)
		}
	}

	return router
}
