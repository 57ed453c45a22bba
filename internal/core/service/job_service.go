package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zynor/field-service-api/internal/core/domain"
	"github.com/zynor/field-service-api/internal/core/ports"
)

// JobService implements the job CRUD paths. Job→Customer and Job→Technician
// references are enforced by the storage layer; violations surface as
// domain.ErrInvalidReference.
type JobService struct {
	repo ports.JobRepository
	log  zerolog.Logger
}

func NewJobService(repo ports.JobRepository, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, log: log}
}

func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("must not be empty", "title")
	}
	if input.CustomerID == 0 {
		return nil, domain.NewValidationError("must reference a customer", "customer_id")
	}

	status := input.Status
	if status == "" {
		status = domain.JobStatusNew
	}

	now := time.Now().UTC()
	job := &domain.Job{
		Title:            title,
		Description:      strings.TrimSpace(input.Description),
		Status:           status,
		ScheduledStartAt: input.ScheduledStartAt,
		ScheduledEndAt:   input.ScheduledEndAt,
		CustomerID:       input.CustomerID,
		TechnicianID:     input.TechnicianID,
		CreatedByUserID:  input.ActorID,
		UpdatedByUserID:  input.ActorID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	s.log.Info().Uint("job_id", job.ID).Uint("customer_id", job.CustomerID).Msg("job created")
	return job, nil
}

func (s *JobService) Get(ctx context.Context, id uint) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) List(ctx context.Context) ([]*domain.Job, error) {
	return s.repo.List(ctx)
}

func (s *JobService) Update(ctx context.Context, id uint, input ports.UpdateJobInput) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.NewValidationError("must not be empty", "title")
		}
		job.Title = title
	}
	if input.Description != nil {
		job.Description = strings.TrimSpace(*input.Description)
	}
	if input.Status != nil && *input.Status != "" {
		job.Status = *input.Status
	}
	if input.ScheduledStartAt != nil {
		job.ScheduledStartAt = input.ScheduledStartAt
	}
	if input.ScheduledEndAt != nil {
		job.ScheduledEndAt = input.ScheduledEndAt
	}
	if input.CustomerID != nil && *input.CustomerID != 0 {
		job.CustomerID = *input.CustomerID
	}
	if input.TechnicianID != nil {
		job.TechnicianID = input.TechnicianID
	}
	job.UpdatedByUserID = input.ActorID
	job.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
