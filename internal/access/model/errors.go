package model

import "errors"

var (
	// ErrRequestNotFound indicates that no request with the id exists in the team.
	ErrRequestNotFound = errors.New("access request not found")
	// ErrInvalidRequest indicates that the request is missing or no longer pending.
	ErrInvalidRequest = errors.New("invalid or non-pending access request")
	// ErrRequestPending indicates that the user already has a pending request for the team.
	ErrRequestPending = errors.New("access request already pending")
	// ErrInvalidRequestID indicates that the request id is empty or not a UUID.
	ErrInvalidRequestID = errors.New("invalid access request id")
	// ErrInvalidStatus indicates an unknown status filter.
	ErrInvalidStatus = errors.New("invalid access request status")
	// ErrMessageTooLong indicates that the request message exceeds 500 characters.
	ErrMessageTooLong = errors.New("message must be at most 500 characters")
)
