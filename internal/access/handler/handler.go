// Package handler provides HTTP handlers for access request endpoints.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	accessModel "github.com/staffhub/staffhub/internal/access/model"
	"github.com/staffhub/staffhub/internal/access/service"
	"github.com/staffhub/staffhub/internal/middleware"
	"github.com/staffhub/staffhub/internal/validation"
)

// Handler handles HTTP requests for access request endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new access handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RequestAccess handles POST /teams/:id/join request.
// @Summary Request to join a team
// @Tags Access
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body accessModel.JoinRequest false "Optional message"
// @Success 201 {object} map[string]accessModel.AccessRequestResponse "Response wrapped in request object"
// @Failure 400 {object} ErrorResponse "Invalid team id or message"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "ALREADY_MEMBER or REQUEST_PENDING"
// @Router /teams/{id}/join [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RequestAccess(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req accessModel.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		errorResponse(c, "INVALID_REQUEST", validation.Describe(err), http.StatusBadRequest)
		return
	}

	resp, err := h.service.RequestAccess(c.Request.Context(), userID, c.Param("id"), req.Message)
	if err != nil {
		respondError(c, h.logger, err, "error requesting access")
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"request": resp,
	})
}

// ListRequests handles GET /teams/:id/requests request.
// @Summary List access requests of a team
// @Tags Access
// @Produce json
// @Param id path string true "Team ID"
// @Param status query string false "Status filter (pending, approved, rejected)"
// @Success 200 {object} accessModel.ListRequestsResponse
// @Failure 400 {object} ErrorResponse "Invalid team id or status"
// @Failure 403 {object} ErrorResponse "Caller is not a team admin"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id}/requests [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListRequests(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var query accessModel.ListRequestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		errorResponse(c, "INVALID_REQUEST", validation.Describe(err), http.StatusBadRequest)
		return
	}

	requests, err := h.service.ListRequests(c.Request.Context(), userID, c.Param("id"), accessModel.Status(query.Status))
	if err != nil {
		respondError(c, h.logger, err, "error listing access requests")
		return
	}

	c.JSON(http.StatusOK, accessModel.ListRequestsResponse{Requests: requests})
}

// ApproveAccess handles POST /teams/:id/requests/:requestId/approve request.
// @Summary Approve a pending access request
// @Tags Access
// @Produce json
// @Param id path string true "Team ID"
// @Param requestId path string true "Access request ID"
// @Success 200 {object} accessModel.ApproveResponse
// @Failure 400 {object} ErrorResponse "Request missing, in another team or not pending"
// @Failure 403 {object} ErrorResponse "Caller is not a team admin"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "User is already a member"
// @Router /teams/{id}/requests/{requestId}/approve [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ApproveAccess(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.ApproveAccess(c.Request.Context(), userID, c.Param("id"), c.Param("requestId"))
	if err != nil {
		respondError(c, h.logger, err, "error approving access request")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RejectAccess handles POST /teams/:id/requests/:requestId/reject request.
// @Summary Reject an access request
// @Tags Access
// @Produce json
// @Param id path string true "Team ID"
// @Param requestId path string true "Access request ID"
// @Success 200 {object} map[string]accessModel.AccessRequestResponse "Response wrapped in request object"
// @Failure 403 {object} ErrorResponse "Caller is not a team admin"
// @Failure 404 {object} ErrorResponse "Team or request not found"
// @Router /teams/{id}/requests/{requestId}/reject [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RejectAccess(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.RejectAccess(c.Request.Context(), userID, c.Param("id"), c.Param("requestId"))
	if err != nil {
		respondError(c, h.logger, err, "error rejecting access request")
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"request": resp,
	})
}
