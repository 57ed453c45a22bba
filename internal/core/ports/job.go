package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zynor/field-service-api/internal/core/domain"
)

// CreateJobInput carries the job create payload.
type CreateJobInput struct {
	Title            string
	Description      string
	Status           string
	ScheduledStartAt *time.Time
	ScheduledEndAt   *time.Time
	CustomerID       uint
	TechnicianID     *uuid.UUID
	ActorID          *uint
}

// UpdateJobInput merges only the provided fields; nil means absent.
type UpdateJobInput struct {
	Title            *string
	Description      *string
	Status           *string
	ScheduledStartAt *time.Time
	ScheduledEndAt   *time.Time
	CustomerID       *uint
	TechnicianID     *uuid.UUID
	ActorID          *uint
}

// JobRepository defines persistence for jobs. Foreign-key violations surface
// as domain.ErrInvalidReference.
type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	FindByID(ctx context.Context, id uint) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	Update(ctx context.Context, j *domain.Job) error
	Delete(ctx context.Context, id uint) error
}

// JobService defines the job CRUD use cases.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id uint) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	Update(ctx context.Context, id uint, input UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, id uint) error
}
