// Package model provides domain models and DTOs for the team module.
package model

import (
	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
)

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name           string `json:"name"            binding:"required,notblank,max=255"`
	Industry       string `json:"industry"        binding:"max=100"`
	IsDiscoverable bool   `json:"is_discoverable"`
}

// TeamResponse is the public representation of a team.
type TeamResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Industry       string `json:"industry"`
	IsDiscoverable bool   `json:"is_discoverable"`
	Status         Status `json:"status"`
	CreatedBy      string `json:"created_by"`
	CreatedAt      string `json:"created_at"`
}

// SettingsResponse is the public representation of team settings.
type SettingsResponse struct {
	DefaultRole string `json:"default_role"`
	Timezone    string `json:"timezone"`
}

// TeamDetailsResponse is returned by GET /teams/:id.
type TeamDetailsResponse struct {
	TeamResponse
	Settings    SettingsResponse `json:"settings"`
	MemberCount int64            `json:"member_count"`
	AdminCount  int64            `json:"admin_count"`
}

// MyTeamResponse is a team together with the caller's role in it.
type MyTeamResponse struct {
	TeamResponse
	Role membershipModel.Role `json:"role"`
}

// TeamWithRole is the row shape of the teams/memberships join.
type TeamWithRole struct {
	Team
	Role membershipModel.Role `gorm:"column:role"`
}
