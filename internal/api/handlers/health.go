package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports process and database health
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health handles GET /health
// @Summary Health check
// @Description Report service health including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} HealthResponse "Service is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Version:   "1.0.0",
		Timestamp: time.Now(),
		Services:  map[string]string{},
	}

	if err := h.ping(c); err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	response.Services["database"] = "healthy"
	c.JSON(http.StatusOK, response)
}

// Ready handles GET /health/ready
// @Summary Readiness check
// @Description Report whether the service can accept traffic
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Service is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.ping(c); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"ready":     false,
			"timestamp": time.Now(),
			"services":  gin.H{"database": "not ready: " + err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ready":     true,
		"timestamp": time.Now(),
		"services":  gin.H{"database": "ready"},
	})
}

// Live handles GET /health/live
// @Summary Liveness check
// @Description Report that the process is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) ping(c *gin.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(c.Request.Context())
}
