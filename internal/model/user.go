package model

import (
	"errors"
	"time"
)

// User represents a dog owner account.
type User struct {
	ID            int64     `db:"id" json:"id"`
	FullName      string    `db:"full_name" json:"full_name"`
	Email         string    `db:"email" json:"email"`
	PasswordHash  string    `db:"password_hash" json:"-"` // "-" hides from JSON output
	ContactNumber *string   `db:"contact_number" json:"contact_number"`
	Address       *string   `db:"address" json:"address"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest represents the data needed to register a new account.
type RegisterRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

// LoginRequest represents the data needed to log in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists is returned when registering with an email that is already taken
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned for an unknown email or a password
	// mismatch. Callers must not distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
