package model

import "errors"

var (
	// ErrAlreadyMember indicates that the user already belongs to the team.
	ErrAlreadyMember = errors.New("user is already a member of the team")
	// ErrMembershipNotFound indicates that the user does not belong to the team.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrForbidden indicates that the caller lacks the role required by the operation.
	ErrForbidden = errors.New("insufficient team role")
	// ErrInvalidRole indicates an unknown role.
	ErrInvalidRole = errors.New("invalid role")
)
