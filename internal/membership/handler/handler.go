// Package handler provides HTTP handlers for membership endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	"github.com/staffhub/staffhub/internal/membership/service"
	"github.com/staffhub/staffhub/internal/middleware"
	"github.com/staffhub/staffhub/internal/validation"
)

// Handler handles HTTP requests for membership endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new membership handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListMembers handles GET /teams/:id/members request.
// @Summary List team members
// @Tags Memberships
// @Produce json
// @Param id path string true "Team ID"
// @Param role query string false "Role filter (admin, user)"
// @Success 200 {object} membershipModel.ListMembersResponse
// @Failure 400 {object} ErrorResponse "Invalid team id or role"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id}/members [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListMembers(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var query membershipModel.ListMembersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		errorResponse(c, "INVALID_REQUEST", validation.Describe(err), http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListMembers(c.Request.Context(), userID, c.Param("id"), membershipModel.Role(query.Role))
	if err != nil {
		respondError(c, h.logger, err, "error listing members")
		return
	}

	c.JSON(http.StatusOK, resp)
}
