// Package handler provides HTTP handlers for the team activity feed.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	auditModel "github.com/staffhub/staffhub/internal/audit/model"
	"github.com/staffhub/staffhub/internal/audit/service"
	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	"github.com/staffhub/staffhub/internal/middleware"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
	"github.com/staffhub/staffhub/internal/validation"
)

// ErrorResponse represents the API error body.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// Handler handles HTTP requests for the activity feed.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new audit handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListTeamActivity handles GET /teams/:id/activity request.
// @Summary List recent team activity
// @Tags Activity
// @Produce json
// @Param id path string true "Team ID"
// @Param limit query int false "Page size (1-100, default 20)"
// @Success 200 {object} auditModel.ActivityResponse
// @Failure 400 {object} ErrorResponse "Invalid team id or limit"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id}/activity [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTeamActivity(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var query auditModel.ActivityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		errorResponse(c, "INVALID_REQUEST", validation.Describe(err), http.StatusBadRequest)
		return
	}

	teamID := c.Param("id")
	resp, err := h.service.ListTeamActivity(c.Request.Context(), userID, teamID, query.Limit)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrInvalidTeamID):
			errorResponse(c, "INVALID_REQUEST", "invalid team id", http.StatusBadRequest)
		case errors.Is(err, teamModel.ErrTeamNotFound):
			errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
		case errors.Is(err, membershipModel.ErrForbidden):
			errorResponse(c, "FORBIDDEN", "team membership required", http.StatusForbidden)
		default:
			h.logger.Errorw("error listing team activity", "team_id", teamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
