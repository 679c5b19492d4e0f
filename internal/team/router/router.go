// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	membershipRepository "github.com/staffhub/staffhub/internal/membership/repository"
	"github.com/staffhub/staffhub/internal/team/handler"
	"github.com/staffhub/staffhub/internal/team/repository"
	"github.com/staffhub/staffhub/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(db), membershipRepository.New(db), db, logger)
	h := handler.New(svc, logger)

	r.POST("/teams", h.CreateTeam)
	r.GET("/teams", h.ListTeams)
	r.GET("/teams/my", h.ListMyTeams)
	r.GET("/teams/:id", h.GetTeam)
}
