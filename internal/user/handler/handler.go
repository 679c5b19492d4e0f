// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/staffhub/staffhub/internal/middleware"
	"github.com/staffhub/staffhub/internal/user/service"
)

// ErrorResponse represents the API error body.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(c *gin.Context, code, message string, status int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(status, resp)
}

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetMyRequests handles GET /users/me/requests request.
// @Summary List the caller's access requests
// @Tags Users
// @Produce json
// @Success 200 {object} model.MyRequestsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/me/requests [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetMyRequests(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.GetMyRequests(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("error getting user requests", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
