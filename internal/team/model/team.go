package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the lifecycle state of a team.
type Status string

const (
	// StatusActive marks a team that accepts members.
	StatusActive Status = "active"
	// StatusArchived marks a team hidden from discovery.
	StatusArchived Status = "archived"
)

// DefaultTimezone is the timezone stored in new team settings.
const DefaultTimezone = "UTC"

// Team represents a tenant organization unit.
// Matches the teams table schema.
type Team struct {
	ID             string    `gorm:"primaryKey;column:id;type:uuid"                       json:"id"`
	Name           string    `gorm:"column:name;type:varchar(255);not null"               json:"name"`
	Industry       string    `gorm:"column:industry;type:varchar(100);not null;default:''" json:"industry"`
	IsDiscoverable bool      `gorm:"column:is_discoverable;not null;default:false"        json:"is_discoverable"`
	Status         Status    `gorm:"column:status;type:team_status_enum;not null"         json:"status"`
	CreatedBy      string    `gorm:"column:created_by;type:varchar(255);not null"         json:"created_by"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"                           json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"                           json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns a UUID when none is set.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = StatusActive
	}
	return nil
}

// Settings holds per-team preferences, one row per team.
// Matches the team_settings table schema.
type Settings struct {
	TeamID      string    `gorm:"primaryKey;column:team_id;type:uuid"              json:"team_id"`
	DefaultRole string    `gorm:"column:default_role;type:varchar(32);not null"    json:"default_role"`
	Timezone    string    `gorm:"column:timezone;type:varchar(64);not null"        json:"timezone"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"                       json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"                       json:"-"`
}

// TableName specifies the table name for GORM.
func (Settings) TableName() string {
	return "team_settings"
}
