package model

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxNameLength     = 255
	maxIndustryLength = 100

	canonicalUUIDLength = 36
)

// ValidateTeamID checks that id is a UUID in canonical 36-character form.
// uuid.Parse also accepts the urn and braced forms, which the database rejects.
func ValidateTeamID(id string) error {
	if len(id) != canonicalUUIDLength {
		return ErrInvalidTeamID
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidTeamID
	}
	return nil
}

// Normalize trims the request fields and checks their lengths.
func (r *CreateTeamRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Industry = strings.TrimSpace(r.Industry)

	if r.Name == "" || utf8.RuneCountInString(r.Name) > maxNameLength {
		return ErrInvalidTeamName
	}
	if utf8.RuneCountInString(r.Industry) > maxIndustryLength {
		return ErrInvalidIndustry
	}
	return nil
}
