package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamID indicates that the team id is empty or not a UUID.
	ErrInvalidTeamID = errors.New("invalid team id")
	// ErrInvalidTeamName indicates that the team name is blank or longer than 255 characters.
	ErrInvalidTeamName = errors.New("team name must be between 1 and 255 characters")
	// ErrInvalidIndustry indicates that the industry is longer than 100 characters.
	ErrInvalidIndustry = errors.New("industry must be at most 100 characters")
)
