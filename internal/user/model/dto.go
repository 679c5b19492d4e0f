// Package model provides data transfer objects for user module.
package model

import (
	accessModel "github.com/staffhub/staffhub/internal/access/model"
)

// RequestWithTeam is an access request joined with its team name.
type RequestWithTeam struct {
	accessModel.AccessRequest
	TeamName string `gorm:"column:team_name"`
}

// MyRequest is one of the caller's access requests.
type MyRequest struct {
	accessModel.AccessRequestResponse
	TeamName string `json:"team_name"`
}

// MyRequestsResponse represents response for GET /users/me/requests.
type MyRequestsResponse struct {
	UserID   string      `json:"user_id"`
	Requests []MyRequest `json:"requests"`
}

// ToMyRequest converts a joined row to its public representation.
func (r *RequestWithTeam) ToMyRequest() MyRequest {
	return MyRequest{
		AccessRequestResponse: r.AccessRequest.ToResponse(),
		TeamName:              r.TeamName,
	}
}
