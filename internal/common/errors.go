// Package common defines shared constants and sentinel errors used across
// client and server layers of MealMate. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorForbidden     = errors.New("forbidden")
	ErrorValidation    = errors.New("validation error")

	// Wallet errors.
	ErrorInsufficientBalance = errors.New("insufficient balance")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Password-recovery errors.
	ErrCodeExpired  = errors.New("code expired")
	ErrCodeMismatch = errors.New("invalid otp")
	ErrTooManyCodes = errors.New("too many code requests")
)
