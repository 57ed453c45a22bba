package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/zynor/field-service-api/internal/core/domain"
)

// CreateTechnicianInput carries all data needed to create a technician.
// ActorID is the authenticated principal, when present, for audit stamping.
type CreateTechnicianInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Skills     []string
	HourlyRate *float64
	IsActive   *bool // nil means the default (true)
	ActorID    *uint
}

// UpdateTechnicianInput carries the full-update (PUT) payload. The payload
// shape itself constrains which fields are settable: hourly_rate is not
// part of it. Empty Email/Phone leave the stored value untouched; a nil
// IsActive does the same.
type UpdateTechnicianInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Skills    []string
	IsActive  *bool
	ActorID   *uint
}

// PatchTechnicianInput carries a partial-update payload as decoded JSON.
// Keys must be a subset of the patch whitelist; anything else fails the
// whole operation.
type PatchTechnicianInput struct {
	Fields  map[string]any
	ActorID *uint
}

// ListTechniciansResult is the paginated list view. Total counts all matches
// before pagination and is identical regardless of the requested page.
type ListTechniciansResult struct {
	Items    []*domain.Technician
	Page     int
	PageSize int
	Total    int64
}

// TechnicianService defines the technician use cases: the dynamic query
// engine (List) and the mutation engine (Create/Update/Patch/Delete).
type TechnicianService interface {
	Create(ctx context.Context, input CreateTechnicianInput) (*domain.Technician, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Technician, error)
	List(ctx context.Context, filter ListTechniciansFilter) (*ListTechniciansResult, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTechnicianInput) (*domain.Technician, error)
	Patch(ctx context.Context, id uuid.UUID, input PatchTechnicianInput) (*domain.Technician, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
