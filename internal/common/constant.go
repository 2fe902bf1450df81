// Package common contains shared constants and sentinel errors used across
// MealMate components.
package common

// AuthHeaderName is the HTTP header carrying the session credential on
// outbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is prepended to the credential in the auth header.
const BearerPrefix = "Bearer "

// Persisted session store keys. The server never sees these; they name the
// rows in the client's local store.
const (
	SessionKeyToken = "token"
	SessionKeyUser  = "user"
)
