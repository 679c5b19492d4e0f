package model

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// IsRequestID reports whether id is a request id in canonical UUID form.
func IsRequestID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// NormalizeMessage trims msg and checks its length.
func NormalizeMessage(msg string) (string, error) {
	msg = strings.TrimSpace(msg)
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return msg, nil
}
