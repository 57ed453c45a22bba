package handler

import (
	"time"

	"github.com/google/uuid"
)

type createTechnicianRequest struct {
	FirstName  string   `json:"first_name" validate:"required,max=100"`
	LastName   string   `json:"last_name" validate:"required,max=100"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      string   `json:"phone" validate:"omitempty,max=25"`
	Skills     []string `json:"skills" validate:"omitempty,max=20,dive,max=50"`
	HourlyRate *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	IsActive   *bool    `json:"is_active"`
}

// updateTechnicianRequest is the full-replacement payload. Its shape is the
// whitelist: hourly_rate is deliberately absent and cannot be changed here.
type updateTechnicianRequest struct {
	FirstName string   `json:"first_name" validate:"required,max=100"`
	LastName  string   `json:"last_name" validate:"required,max=100"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Phone     string   `json:"phone" validate:"omitempty,max=25"`
	Skills    []string `json:"skills" validate:"omitempty,max=20,dive,max=50"`
	IsActive  *bool    `json:"is_active"`
}

type technicianResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Skills     []string  `json:"skills"`
	HourlyRate *float64  `json:"hourly_rate,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type listTechniciansResponse struct {
	Items    []technicianResponse `json:"items"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	Total    int64                `json:"total"`
}
