package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           int64
	Username     string // unique, immutable after creation
	Email        string // unique
	PasswordHash string // bcrypt encoded, never serialised
	FirstName    string
	LastName     string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the first and last name with a single space, dropping
// whichever side is empty.
func (u User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}
