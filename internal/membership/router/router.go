// Package router provides membership module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/staffhub/staffhub/internal/membership/handler"
	"github.com/staffhub/staffhub/internal/membership/repository"
	"github.com/staffhub/staffhub/internal/membership/service"
	teamRepository "github.com/staffhub/staffhub/internal/team/repository"
)

// RegisterRoutes registers membership module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(db), teamRepository.New(db), logger)
	h := handler.New(svc, logger)

	r.GET("/teams/:id/members", h.ListMembers)
}
