// Package router provides activity feed routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/staffhub/staffhub/internal/audit/handler"
	"github.com/staffhub/staffhub/internal/audit/repository"
	"github.com/staffhub/staffhub/internal/audit/service"
	membershipRepository "github.com/staffhub/staffhub/internal/membership/repository"
	membershipService "github.com/staffhub/staffhub/internal/membership/service"
	teamRepository "github.com/staffhub/staffhub/internal/team/repository"
)

// RegisterRoutes registers activity feed routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	members := membershipService.New(membershipRepository.New(db), teamRepository.New(db), logger)
	svc := service.New(repository.New(db), members, logger)
	h := handler.New(svc, logger)

	r.GET("/teams/:id/activity", h.ListTeamActivity)
}
