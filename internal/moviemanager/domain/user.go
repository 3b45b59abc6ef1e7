package domain

import "time"

type User struct {
	ID           string
	Username     string // unique, case-sensitive
	Email        string
	PasswordHash string // bcrypt encoded, never the plaintext
	RoleID       int64  // Foreign key to roles table
	Role         Role   // Populated on lookup
	CreatedAt    time.Time
}

// SignupInput is the raw registration payload as received from a client.
type SignupInput struct {
	Username string
	Email    string
	Password string
	RoleID   int64
}

// Credentials is a login attempt.
type Credentials struct {
	Username string
	Password string
}
