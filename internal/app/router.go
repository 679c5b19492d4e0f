// Package app assembles the HTTP application from the domain modules.
package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	accessRouter "github.com/staffhub/staffhub/internal/access/router"
	auditRouter "github.com/staffhub/staffhub/internal/audit/router"
	"github.com/staffhub/staffhub/internal/auth"
	"github.com/staffhub/staffhub/internal/health"
	membershipRouter "github.com/staffhub/staffhub/internal/membership/router"
	"github.com/staffhub/staffhub/internal/middleware"
	statisticsRouter "github.com/staffhub/staffhub/internal/statistics/router"
	teamRouter "github.com/staffhub/staffhub/internal/team/router"
	userRouter "github.com/staffhub/staffhub/internal/user/router"
	"github.com/staffhub/staffhub/internal/validation"
)

// NewRouter builds the gin engine. Every route except /health requires a
// bearer token accepted by verifier.
func NewRouter(db *gorm.DB, verifier auth.Verifier, logger *zap.SugaredLogger) (*gin.Engine, error) {
	if err := validation.Register(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"code": "NOT_FOUND", "message": "route not found"},
		})
	})

	health.RegisterRoutes(r, db, logger)

	api := r.Group("/", middleware.Auth(verifier, logger))
	teamRouter.RegisterRoutes(api, db, logger)
	membershipRouter.RegisterRoutes(api, db, logger)
	accessRouter.RegisterRoutes(api, db, logger)
	auditRouter.RegisterRoutes(api, db, logger)
	statisticsRouter.RegisterRoutes(api, db, logger)
	userRouter.RegisterRoutes(api, db, logger)

	return r, nil
}
