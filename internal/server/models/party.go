package models

import (
	"time"

	"github.com/google/uuid"
)

// Party is a person or organization involved in a case.
type Party struct {
	ID        uuid.UUID  `json:"id"`
	CaseID    uuid.UUID  `json:"case_id"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	PartyType string     `json:"type"`
	Contact   *string    `json:"contact"`
	Counsel   *string    `json:"counsel"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone"`
	Email     *string    `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
