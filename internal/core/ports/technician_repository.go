package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/zynor/field-service-api/internal/core/domain"
)

// ListTechniciansFilter carries all query parameters for listing technicians.
// All filters are optional and AND-combined.
type ListTechniciansFilter struct {
	Query     string   // case-insensitive substring over first_name OR last_name OR email OR phone
	FirstName string   // case-insensitive substring
	LastName  string   // case-insensitive substring
	Email     string   // case-insensitive substring
	IsActive  *bool    // exact match
	Skill     string   // membership test against the skills list
	MinRate   *float64 // hourly_rate >= MinRate
	MaxRate   *float64 // hourly_rate <= MaxRate
	Sort      []string // field tokens, "-" prefix for descending; unknown tokens ignored
	Page      int      // 1-based
	PageSize  int      // > 0, trusted
}

// TechnicianRepository defines persistence operations for technicians.
// Mutations run in their own transaction: committed on success, rolled back
// on any error. Unique violations surface as domain conflict errors.
type TechnicianRepository interface {
	Create(ctx context.Context, t *domain.Technician) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error)
	// List returns a page of technicians matching filter and the total count
	// of matches before pagination.
	List(ctx context.Context, filter ListTechniciansFilter) ([]*domain.Technician, int64, error)
	// EmailInUse reports whether another technician (excluding excludeID)
	// already holds the given lowercase email.
	EmailInUse(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	// PhoneInUse is the phone analog of EmailInUse.
	PhoneInUse(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, t *domain.Technician) error
	Delete(ctx context.Context, id uuid.UUID) error
}
