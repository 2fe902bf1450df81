// Package models defines the client-side representations of MealMate API
// entities. Field names follow the backend's JSON contract.
package models

// Role is the closed set of account roles recognized by the backend.
type Role string

const (
	RoleUser      Role = "user"
	RoleMessOwner Role = "mess_owner"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleMessOwner, RoleAdmin:
		return true
	}
	return false
}

// MessDetails is attached to mess-owner accounts.
type MessDetails struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
}

// User is the authenticated account profile returned by the backend.
// A User is only meaningful while a matching credential is held; the session
// service sets and clears the two together.
type User struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        Role         `json:"role"`
	Balance     float64      `json:"balance"`
	Address     string       `json:"address,omitempty"`
	MessDetails *MessDetails `json:"messDetails,omitempty"`
}
