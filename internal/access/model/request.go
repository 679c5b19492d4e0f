package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the state of an access request.
type Status string

const (
	// StatusPending is the initial state of every request.
	StatusPending Status = "pending"
	// StatusApproved means a membership was created for the request.
	StatusApproved Status = "approved"
	// StatusRejected means the request was declined.
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// AccessRequest is a user's ask to join a team.
// Matches the team_access_requests table schema.
type AccessRequest struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid"                                json:"id"`
	UserID    string    `gorm:"column:user_id;type:varchar(255);not null;index"               json:"user_id"`
	TeamID    string    `gorm:"column:team_id;type:uuid;not null;index:idx_requests_team_status" json:"team_id"`
	Status    Status    `gorm:"column:status;type:access_request_status_enum;not null;index:idx_requests_team_status" json:"status"`
	Message   string    `gorm:"column:message;type:varchar(500);not null;default:''"         json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                                    json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"                                    json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (AccessRequest) TableName() string {
	return "team_access_requests"
}

// BeforeCreate assigns a UUID and the pending status when unset.
func (r *AccessRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}
