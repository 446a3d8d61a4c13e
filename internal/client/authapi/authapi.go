// Package authapi defines the authentication backend contract consumed by the
// session manager, together with two implementations: an in-memory mock that
// simulates a remote endpoint, and a JSON/HTTP client for a real backend
// exposing the same three operations.
package authapi

import "context"

// User is an account record as returned by the auth backend.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Result is a successful authentication outcome.
type Result struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// API is the authentication backend contract.
//
// Login and Register return common.ErrInvalidCredentials and
// common.ErrDuplicateAccount respectively on the expected failure paths;
// callers match them with errors.Is. All methods honor context cancellation.
type API interface {
	Login(ctx context.Context, email, password string) (*Result, error)
	Register(ctx context.Context, email, password string) (*Result, error)
	Logout(ctx context.Context) error
}
