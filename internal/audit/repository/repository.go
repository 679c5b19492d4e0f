// Package repository provides data access layer for the audit log.
package repository

import (
	"context"

	"gorm.io/gorm"

	auditModel "github.com/staffhub/staffhub/internal/audit/model"
)

// Repository defines the interface for audit event storage.
type Repository interface {
	// Record appends an event.
	Record(ctx context.Context, teamID, actorID string, action auditModel.Action, targetID string) (*auditModel.Event, error)

	// ListByTeam returns up to limit events of a team, newest first.
	ListByTeam(ctx context.Context, teamID string, limit int) ([]auditModel.Event, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new audit repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Record appends an event.
func (r *repository) Record(
	ctx context.Context,
	teamID, actorID string,
	action auditModel.Action,
	targetID string,
) (*auditModel.Event, error) {
	event := &auditModel.Event{
		TeamID:   teamID,
		ActorID:  actorID,
		Action:   action,
		TargetID: targetID,
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}

	return event, nil
}

// ListByTeam returns up to limit events of a team, newest first.
func (r *repository) ListByTeam(ctx context.Context, teamID string, limit int) ([]auditModel.Event, error) {
	var events []auditModel.Event
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}
