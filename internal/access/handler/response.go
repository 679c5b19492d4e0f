package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	accessModel "github.com/staffhub/staffhub/internal/access/model"
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

// respondError maps access workflow errors to API errors.
func respondError(c *gin.Context, logger *zap.SugaredLogger, err error, msg string) {
	switch {
	case errors.Is(err, teamModel.ErrInvalidTeamID):
		errorResponse(c, "INVALID_REQUEST", "invalid team id", http.StatusBadRequest)
	case errors.Is(err, accessModel.ErrInvalidRequest):
		errorResponse(c, "INVALID_REQUEST", "request not found or not pending", http.StatusBadRequest)
	case errors.Is(err, accessModel.ErrInvalidStatus):
		errorResponse(c, "INVALID_REQUEST", "status must be one of pending, approved, rejected", http.StatusBadRequest)
	case errors.Is(err, accessModel.ErrMessageTooLong):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, membershipModel.ErrForbidden):
		errorResponse(c, "FORBIDDEN", "team admin role required", http.StatusForbidden)
	case errors.Is(err, teamModel.ErrTeamNotFound):
		errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
	case errors.Is(err, accessModel.ErrRequestNotFound):
		errorResponse(c, "NOT_FOUND", "access request not found", http.StatusNotFound)
	case errors.Is(err, membershipModel.ErrAlreadyMember):
		errorResponse(c, "ALREADY_MEMBER", "user is already a member of the team", http.StatusConflict)
	case errors.Is(err, accessModel.ErrRequestPending):
		errorResponse(c, "REQUEST_PENDING", "a pending request already exists", http.StatusConflict)
	default:
		logger.Errorw(msg, "path", c.Request.URL.Path, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
