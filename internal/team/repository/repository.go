// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new active team.
	Create(ctx context.Context, name, industry string, discoverable bool, createdBy string) (*teamModel.Team, error)

	// CreateSettings inserts the default settings row of a team.
	CreateSettings(ctx context.Context, teamID string) (*teamModel.Settings, error)

	// GetByID finds a team by id.
	GetByID(ctx context.Context, teamID string) (*teamModel.Team, error)

	// GetSettings returns the settings of a team.
	GetSettings(ctx context.Context, teamID string) (*teamModel.Settings, error)

	// Exists reports whether a team with the id exists.
	Exists(ctx context.Context, teamID string) (bool, error)

	// ListDiscoverable returns active discoverable teams ordered by name.
	ListDiscoverable(ctx context.Context) ([]teamModel.Team, error)

	// ListByMember returns the teams a user belongs to with the user's role.
	ListByMember(ctx context.Context, userID string) ([]teamModel.TeamWithRole, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new active team.
func (r *repository) Create(
	ctx context.Context,
	name, industry string,
	discoverable bool,
	createdBy string,
) (*teamModel.Team, error) {
	team := &teamModel.Team{
		Name:           name,
		Industry:       industry,
		IsDiscoverable: discoverable,
		Status:         teamModel.StatusActive,
		CreatedBy:      createdBy,
	}
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

// CreateSettings inserts the default settings row of a team.
func (r *repository) CreateSettings(ctx context.Context, teamID string) (*teamModel.Settings, error) {
	settings := &teamModel.Settings{
		TeamID:      teamID,
		DefaultRole: string(membershipModel.RoleUser),
		Timezone:    teamModel.DefaultTimezone,
	}
	if err := r.db.WithContext(ctx).Create(settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, teamID string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// GetSettings returns the settings of a team.
func (r *repository) GetSettings(ctx context.Context, teamID string) (*teamModel.Settings, error) {
	var settings teamModel.Settings
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &settings, nil
}

// Exists reports whether a team with the id exists.
func (r *repository) Exists(ctx context.Context, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListDiscoverable returns active discoverable teams ordered by name.
func (r *repository) ListDiscoverable(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("is_discoverable = ? AND status = ?", true, teamModel.StatusActive).
		Order("name ASC, id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	return teams, nil
}

// ListByMember returns the teams a user belongs to with the user's role.
func (r *repository) ListByMember(ctx context.Context, userID string) ([]teamModel.TeamWithRole, error) {
	var rows []teamModel.TeamWithRole
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("teams.*, team_memberships.role AS role").
		Joins("JOIN team_memberships ON team_memberships.team_id = teams.id").
		Where("team_memberships.user_id = ?", userID).
		Order("teams.name ASC, teams.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
