package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string // Sign-in identifier, also the source of the author handle
	PasswordHash string // argon2 encoded
	RoleID       string // Foreign key to roles table, never empty once provisioned
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Handle returns the author handle stamped onto posts and comments.
func (u User) Handle() string {
	return DeriveHandle(u.Email)
}

// DeriveHandle returns the part of an email-like identifier before the first
// '@'. Input without an '@' is returned unchanged.
func DeriveHandle(email string) string {
	handle, _, _ := strings.Cut(email, "@")
	return handle
}
