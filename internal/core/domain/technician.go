package domain

import (
	"time"

	"github.com/google/uuid"
)

// Technician is the primary field-service entity. Email is globally unique
// (lowercase-normalized); phone is unique when present. Skills keep their
// first-seen casing and order.
type Technician struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Skills          []string  `json:"skills"`
	HourlyRate      *float64  `json:"hourly_rate,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedByUserID *uint     `json:"created_by_user_id,omitempty"`
	UpdatedByUserID *uint     `json:"updated_by_user_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
