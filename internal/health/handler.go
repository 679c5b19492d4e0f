// Package health provides the liveness endpoint.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/staffhub/staffhub/internal/database/database"
)

// defaultTimeout bounds the database ping.
const defaultTimeout = 3 * time.Second

// Handler handles health check requests.
type Handler struct {
	db      *gorm.DB
	logger  *zap.SugaredLogger
	timeout time.Duration
}

// New creates a new health handler instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:      db,
		logger:  logger,
		timeout: defaultTimeout,
	}
}

// Response represents health check response.
type Response struct {
	Status string `json:"status"`
}

// RegisterRoutes registers GET /health outside any authentication.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	r.GET("/health", New(db, logger).Check)
}

// Check handles GET /health request.
// @Summary Service liveness
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy"})
		return
	}

	if stats, err := database.GetStats(h.db); err == nil {
		h.logger.Debugw("health check ok",
			"open_connections", stats.OpenConnections,
			"in_use", stats.InUse,
			"wait_count", stats.WaitCount,
		)
	}

	c.JSON(http.StatusOK, Response{Status: "ok"})
}
