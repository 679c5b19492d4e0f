package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
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

// respondError maps service errors to API errors.
func respondError(c *gin.Context, logger *zap.SugaredLogger, err error, msg string) {
	switch {
	case errors.Is(err, teamModel.ErrInvalidTeamID):
		errorResponse(c, "INVALID_REQUEST", "invalid team id", http.StatusBadRequest)
	case errors.Is(err, membershipModel.ErrInvalidRole):
		errorResponse(c, "INVALID_REQUEST", "role must be one of admin, user", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrTeamNotFound):
		errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
	case errors.Is(err, membershipModel.ErrForbidden):
		errorResponse(c, "FORBIDDEN", "team membership required", http.StatusForbidden)
	default:
		logger.Errorw(msg, "path", c.Request.URL.Path, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
