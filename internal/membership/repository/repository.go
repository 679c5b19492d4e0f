// Package repository provides data access layer for membership module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/staffhub/staffhub/internal/database/database"
	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
)

// Repository defines the interface for membership data access operations.
type Repository interface {
	// Create adds a user to a team with the given role.
	Create(ctx context.Context, userID, teamID string, role membershipModel.Role) (*membershipModel.Membership, error)

	// Get finds the membership of a user in a team.
	Get(ctx context.Context, userID, teamID string) (*membershipModel.Membership, error)

	// Exists reports whether the user belongs to the team.
	Exists(ctx context.Context, userID, teamID string) (bool, error)


	// ListByTeam returns all memberships of a team ordered by join time.
	ListByTeam(ctx context.Context, teamID string) ([]membershipModel.Membership, error)

	// CountByRole returns member counts of a team keyed by role.
	CountByRole(ctx context.Context, teamID string) (map[membershipModel.Role]int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new membership repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create adds a user to a team with the given role.
func (r *repository) Create(
	ctx context.Context,
	userID, teamID string,
	role membershipModel.Role,
) (*membershipModel.Membership, error) {
	if !role.Valid() {
		return nil, membershipModel.ErrInvalidRole
	}

	m := &membershipModel.Membership{
		UserID: userID,
		TeamID: teamID,
		Role:   role,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, membershipModel.ErrAlreadyMember
		}
		return nil, err
	}

	return m, nil
}

// Get finds the membership of a user in a team.
func (r *repository) Get(ctx context.Context, userID, teamID string) (*membershipModel.Membership, error) {
	var m membershipModel.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membershipModel.ErrMembershipNotFound
		}
		return nil, err
	}

	return &m, nil
}

// Exists reports whether the user belongs to the team.
func (r *repository) Exists(ctx context.Context, userID, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&membershipModel.Membership{}).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListByTeam returns all memberships of a team ordered by join time.
func (r *repository) ListByTeam(ctx context.Context, teamID string) ([]membershipModel.Membership, error) {
	var members []membershipModel.Membership
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at ASC, id ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	return members, nil
}

// CountByRole returns member counts of a team keyed by role.
// Roles without members are present with a zero count.
func (r *repository) CountByRole(ctx context.Context, teamID string) (map[membershipModel.Role]int64, error) {
	var rows []struct {
		Role  membershipModel.Role
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&membershipModel.Membership{}).
		Select("role, COUNT(*) AS count").
		Where("team_id = ?", teamID).
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[membershipModel.Role]int64{
		membershipModel.RoleAdmin: 0,
		membershipModel.RoleUser:  0,
	}
	for _, row := range rows {
		counts[row.Role] = row.Count
	}

	return counts, nil
}
