// Package model provides domain models and DTOs for the access request module.
package model

import (
	"time"

	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
)

// MaxMessageLength is the longest message accepted with a join request.
const MaxMessageLength = 500

// JoinRequest is the optional body of POST /teams/:id/join.
type JoinRequest struct {
	Message string `json:"message" binding:"max=500"`
}

// ListRequestsQuery filters GET /teams/:id/requests.
type ListRequestsQuery struct {
	Status string `form:"status" binding:"omitempty,requeststatus"`
}

// AccessRequestResponse is the public representation of an access request.
type AccessRequestResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	TeamID    string `json:"team_id"`
	Status    Status `json:"status"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ListRequestsResponse wraps a list of access requests.
type ListRequestsResponse struct {
	Requests []AccessRequestResponse `json:"requests"`
}

// ApproveResponse is returned after a successful approval.
type ApproveResponse struct {
	Request    AccessRequestResponse          `json:"request"`
	Membership membershipModel.MemberResponse `json:"membership"`
}

// ToResponse converts a request to its public representation.
func (r *AccessRequest) ToResponse() AccessRequestResponse {
	return AccessRequestResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		TeamID:    r.TeamID,
		Status:    r.Status,
		Message:   r.Message,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToResponseList converts requests to their public representation.
func ToResponseList(requests []AccessRequest) []AccessRequestResponse {
	out := make([]AccessRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, requests[i].ToResponse())
	}
	return out
}
