// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	"github.com/staffhub/staffhub/internal/middleware"
	"github.com/staffhub/staffhub/internal/statistics/service"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetTeamStatistics handles GET /teams/:id/stats request.
// @Summary Get dashboard counters of a team
// @Tags Statistics
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} model.TeamStatisticsResponse
// @Failure 400 {object} ErrorResponse "Invalid team id"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse
// @Router /teams/{id}/stats [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeamStatistics(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	teamID := c.Param("id")
	resp, err := h.service.GetTeamStatistics(c.Request.Context(), userID, teamID)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrInvalidTeamID):
			errorResponse(c, "INVALID_REQUEST", "invalid team id", http.StatusBadRequest)
		case errors.Is(err, teamModel.ErrTeamNotFound):
			errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
		case errors.Is(err, membershipModel.ErrForbidden):
			errorResponse(c, "FORBIDDEN", "team membership required", http.StatusForbidden)
		default:
			h.logger.Errorw("error getting team statistics", "team_id", teamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
