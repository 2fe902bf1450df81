package models

import "time"

// Role values accepted by the API.
const (
	RoleUser      = "user"
	RoleMessOwner = "mess_owner"
	RoleAdmin     = "admin"
)

func ValidRole(r string) bool {
	return r == RoleUser || r == RoleMessOwner || r == RoleAdmin
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	Role         string
	Balance      float64
	Address      string
	CreatedAt    time.Time
}

// ResetCode is a pending password-recovery code for an email address.
// At most one code is active per email; requesting a new one replaces it.
type ResetCode struct {
	Email     string
	Code      string
	Expires   time.Time
	CreatedAt time.Time
}
