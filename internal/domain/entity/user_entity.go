package entity

import (
	"time"
)

// User is the aggregate root for the credential domain.
// PasswordHash holds a bcrypt digest; Email is immutable after signup.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
