// Package tokens provides the persisted credential store: a small key-value
// facility the session manager uses to retain the auth token across restarts.
//
// Three backends implement the same capability interface and are selected at
// startup from configuration: sqlite (durable default), an encrypted file
// store (secure-storage analog), and an in-memory fallback.
package tokens

import "context"

// Repository is a key-value store for credential material.
// Get returns an empty string with a nil error when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
