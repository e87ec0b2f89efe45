// Package models contains the domain model of the gateway: the user account
// record and the static league descriptor tables of both upstream providers.
package models

import "time"

// User represents a registered user of the application.
type User struct {
	UID           string     // Unique identifier (UUID)
	FullName      string     // Display name, also accepted as a login
	Email         string     // Unique email address
	PasswordHash  string     // bcrypt hash, never serialized to clients
	Role          string     // "user" by default
	Preferences   string     // Free text, stores favourite teams
	ResetToken    *string    // Pending password-reset token, nil when unset
	ResetExpires  *time.Time // Absolute expiration of ResetToken
	CreatedAt     time.Time
}

// DefaultRole is assigned to every user created through registration.
const DefaultRole = "user"
