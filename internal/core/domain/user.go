package domain

import "time"

// Well-known role tags. Roles are plain strings with no hierarchy; access
// checks are exact-match scans against a caller-supplied allow list.
const (
	RoleUser     = "user"
	RoleHost     = "host"
	RoleChef     = "chef"
	RoleAttendee = "attendee"
)

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
