// Package router provides access request routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/staffhub/staffhub/internal/access/handler"
	"github.com/staffhub/staffhub/internal/access/repository"
	"github.com/staffhub/staffhub/internal/access/service"
	membershipRepository "github.com/staffhub/staffhub/internal/membership/repository"
	membershipService "github.com/staffhub/staffhub/internal/membership/service"
	teamRepository "github.com/staffhub/staffhub/internal/team/repository"
)

// RegisterRoutes registers access request routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	teams := teamRepository.New(db)
	members := membershipService.New(membershipRepository.New(db), teams, logger)
	svc := service.New(repository.New(db), teams, members, db, logger)
	h := handler.New(svc, logger)

	r.POST("/teams/:id/join", h.RequestAccess)
	r.GET("/teams/:id/requests", h.ListRequests)
	r.POST("/teams/:id/requests/:requestId/approve", h.ApproveAccess)
	r.POST("/teams/:id/requests/:requestId/reject", h.RejectAccess)
}
