// Package model provides the audit event model.
package model

import "time"

// Action names a recorded team event.
type Action string

const (
	ActionTeamCreated     Action = "team.created"
	ActionAccessRequested Action = "access.requested"
	ActionAccessApproved  Action = "access.approved"
	ActionAccessRejected  Action = "access.rejected"
)

const (
	// DefaultLimit is the page size of the activity feed.
	DefaultLimit = 20
	// MaxLimit caps the activity feed page size.
	MaxLimit = 100
)

// Event is an append-only audit record.
// Matches the audit_events table schema.
type Event struct {
	ID        int64     `gorm:"primaryKey;column:id"                              json:"id"`
	TeamID    string    `gorm:"column:team_id;type:uuid;not null;index"           json:"team_id"`
	ActorID   string    `gorm:"column:actor_id;type:varchar(255);not null"        json:"actor_id"`
	Action    Action    `gorm:"column:action;type:varchar(64);not null"           json:"action"`
	TargetID  string    `gorm:"column:target_id;type:varchar(255);not null"       json:"target_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                        json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Event) TableName() string {
	return "audit_events"
}

// ActivityQuery is the query string of GET /teams/:id/activity.
type ActivityQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// EventResponse is the public representation of an audit event.
type EventResponse struct {
	ID        int64  `json:"id"`
	ActorID   string `json:"actor_id"`
	Action    Action `json:"action"`
	TargetID  string `json:"target_id"`
	CreatedAt string `json:"created_at"`
}

// ActivityResponse wraps a team's activity feed.
type ActivityResponse struct {
	TeamID string          `json:"team_id"`
	Events []EventResponse `json:"events"`
}
