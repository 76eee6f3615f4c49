package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in HashedPassword; the plaintext is
// never persisted or logged.
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
