// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	membershipRepository "github.com/staffhub/staffhub/internal/membership/repository"
	membershipService "github.com/staffhub/staffhub/internal/membership/service"
	"github.com/staffhub/staffhub/internal/statistics/handler"
	"github.com/staffhub/staffhub/internal/statistics/repository"
	"github.com/staffhub/staffhub/internal/statistics/service"
	teamRepository "github.com/staffhub/staffhub/internal/team/repository"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	members := membershipService.New(membershipRepository.New(db), teamRepository.New(db), logger)
	svc := service.New(repository.New(db, logger), members, logger)
	h := handler.New(svc, logger)

	r.GET("/teams/:id/stats", h.GetTeamStatistics)
}
