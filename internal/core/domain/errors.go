package domain

import (
	"errors"
	"strings"
)

var ErrEmailTaken = errors.New("user with this email already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")

// FieldViolation describes a single failed input constraint.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError aggregates every failed constraint of a request so the
// caller sees all problems at once rather than one per round trip.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "Validation errors: " + strings.Join(parts, "; ")
}
