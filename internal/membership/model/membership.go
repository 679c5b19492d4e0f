// Package model provides domain models and DTOs for the membership module.
package model

import "time"

// Role is a member's permission level within a team.
type Role string

const (
	// RoleAdmin may approve and reject access requests.
	RoleAdmin Role = "admin"
	// RoleUser is the role granted on approval.
	RoleUser Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Membership is the durable association of a user to a team.
// Matches the team_memberships table schema; (user_id, team_id) is unique.
type Membership struct {
	ID        int64     `gorm:"primaryKey;column:id"                                                                          json:"-"`
	UserID    string    `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex:uq_team_memberships_user_team,priority:1" json:"user_id"`
	TeamID    string    `gorm:"column:team_id;type:uuid;not null;uniqueIndex:uq_team_memberships_user_team,priority:2;index"   json:"team_id"`
	Role      Role      `gorm:"column:role;type:varchar(32);not null"                                                         json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                                                                    json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Membership) TableName() string {
	return "team_memberships"
}

// ListMembersQuery filters GET /teams/:id/members.
type ListMembersQuery struct {
	Role string `form:"role" binding:"omitempty,teamrole"`
}

// MemberResponse is the public representation of a membership.
type MemberResponse struct {
	UserID   string `json:"user_id"`
	TeamID   string `json:"team_id"`
	Role     Role   `json:"role"`
	JoinedAt string `json:"joined_at"`
}

// ListMembersResponse wraps a team's members.
type ListMembersResponse struct {
	TeamID  string           `json:"team_id"`
	Members []MemberResponse `json:"members"`
}

// ToResponse converts a membership to its public representation.
func (m *Membership) ToResponse() MemberResponse {
	return MemberResponse{
		UserID:   m.UserID,
		TeamID:   m.TeamID,
		Role:     m.Role,
		JoinedAt: m.CreatedAt.UTC().Format(time.RFC3339),
	}
}
