package common

// TokenStorageKey is the fixed key under which the session token is kept
// in the persisted credential store.
const TokenStorageKey = "tafuta-auth-token"

// TokenPrefix is prepended to a user id to form the mock session token.
// Tokens issued by the mock service are opaque strings, not real JWTs.
const TokenPrefix = "fake-jwt-token-for-"
