package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zynor/field-service-api/internal/core/domain"
	"github.com/zynor/field-service-api/internal/core/ports"
)

type stubJobRepo struct {
	jobs   map[uint]*domain.Job
	nextID uint
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[uint]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.Job) error {
	r.nextID++
	j.ID = r.nextID
	clone := *j
	r.jobs[j.ID] = &clone
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id uint) (*domain.Job, error) {
	if j, ok := r.jobs[id]; ok {
		clone := *j
		return &clone, nil
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) List(_ context.Context) ([]*domain.Job, error) {
	out := make([]*domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		clone := *j
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubJobRepo) Update(_ context.Context, j *domain.Job) error {
	if _, ok := r.jobs[j.ID]; !ok {
		return domain.ErrJobNotFound
	}
	clone := *j
	r.jobs[j.ID] = &clone
	return nil
}

func (r *stubJobRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func TestJobService_Create_DefaultsStatus(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	actor := uint(4)
	job, err := svc.Create(context.Background(), ports.CreateJobInput{
		Title:      " Fix heating ",
		CustomerID: 1,
		ActorID:    &actor,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.Title != "Fix heating" {
		t.Fatalf("title not trimmed: %q", job.Title)
	}
	if job.Status != domain.JobStatusNew {
		t.Fatalf("expected default status %q, got %q", domain.JobStatusNew, job.Status)
	}
	if job.CreatedByUserID == nil || *job.CreatedByUserID != 4 {
		t.Fatalf("audit stamp missing: %v", job.CreatedByUserID)
	}
}

func TestJobService_Create_RequiresTitleAndCustomer(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	var ve *domain.ValidationError
	if _, err := svc.Create(context.Background(), ports.CreateJobInput{CustomerID: 1}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for missing title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateJobInput{Title: "Fix"}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for missing customer, got %v", err)
	}
}

func TestJobService_Update_MergesProvidedFields(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	job, err := svc.Create(context.Background(), ports.CreateJobInput{
		Title: "Fix heating", CustomerID: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := "IN_PROGRESS"
	updated, err := svc.Update(context.Background(), job.ID, ports.UpdateJobInput{
		Status: &status,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != "IN_PROGRESS" {
		t.Fatalf("status not updated: %q", updated.Status)
	}
	if updated.Title != "Fix heating" || updated.CustomerID != 1 {
		t.Fatalf("absent fields must not change: %+v", updated)
	}
}

func TestJobService_Update_NotFound(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	title := "Ghost"
	_, err := svc.Update(context.Background(), 42, ports.UpdateJobInput{Title: &title})
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_Delete(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	job, _ := svc.Create(context.Background(), ports.CreateJobInput{Title: "Fix", CustomerID: 1})
	if err := svc.Delete(context.Background(), job.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), job.ID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
