package model

import "time"

// ToResponse converts a team to its public representation.
func (t *Team) ToResponse() TeamResponse {
	return TeamResponse{
		ID:             t.ID,
		Name:           t.Name,
		Industry:       t.Industry,
		IsDiscoverable: t.IsDiscoverable,
		Status:         t.Status,
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToResponse converts settings to their public representation.
func (s *Settings) ToResponse() SettingsResponse {
	return SettingsResponse{
		DefaultRole: s.DefaultRole,
		Timezone:    s.Timezone,
	}
}
