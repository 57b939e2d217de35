// Package common defines sentinel errors shared across the portal client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// Coordinator-level errors.
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEnrollmentNotApplied = errors.New("enrollment was not applied")

	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")
)
