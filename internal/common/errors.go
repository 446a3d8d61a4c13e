// Package common contains shared constants and sentinel errors used across
// Tafuta components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth service errors, surfaced to the user verbatim.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
)
