// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/staffhub/staffhub/internal/middleware"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
	"github.com/staffhub/staffhub/internal/team/service"
	"github.com/staffhub/staffhub/internal/validation"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /teams request.
// @Summary Create a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body teamModel.CreateTeamRequest true "Request"
// @Success 201 {object} map[string]teamModel.TeamResponse "Response wrapped in team object"
// @Failure 400 {object} ErrorResponse "Invalid name or industry"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateTeam(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", validation.Describe(err), http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateTeam(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrInvalidTeamName) || errors.Is(err, teamModel.ErrInvalidIndustry) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating team", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"team": resp,
	})
}

// ListTeams handles GET /teams request.
// @Summary List discoverable teams
// @Tags Teams
// @Produce json
// @Success 200 {object} map[string][]teamModel.TeamResponse "Response wrapped in teams array"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTeams(c *gin.Context) {
	resp, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"teams": resp,
	})
}

// ListMyTeams handles GET /teams/my request.
// @Summary List the caller's teams
// @Tags Teams
// @Produce json
// @Success 200 {object} map[string][]teamModel.MyTeamResponse "Response wrapped in teams array"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/my [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListMyTeams(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.ListMyTeams(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("error listing user teams", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"teams": resp,
	})
}

// GetTeam handles GET /teams/:id request.
// @Summary Get a team with settings and member count
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} teamModel.TeamDetailsResponse "Team details"
// @Failure 400 {object} ErrorResponse "Invalid team id"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeam(c *gin.Context) {
	teamID := c.Param("id")

	resp, err := h.service.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, teamModel.ErrInvalidTeamID) {
			errorResponse(c, "INVALID_REQUEST", "invalid team id", http.StatusBadRequest)
			return
		}
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
