// Package models defines the data models persisted in the database and
// serialized on the HTTP API.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an API account. The password hash is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
