// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/staffhub/staffhub/internal/user/handler"
	"github.com/staffhub/staffhub/internal/user/repository"
	"github.com/staffhub/staffhub/internal/user/service"
)

// RegisterRoutes registers user module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/users/me/requests", h.GetMyRequests)
}
