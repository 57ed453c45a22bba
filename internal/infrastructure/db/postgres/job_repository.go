package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zynor/field-service-api/internal/core/domain"
)

// JobRepository persists jobs. Foreign-key violations on the customer or
// technician references are translated to domain.ErrInvalidReference.
type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	rec := toJobRecord(j)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rec).Error
	})
	if err != nil {
		return translateWriteError(err)
	}
	j.ID = rec.ID
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id uint) (*domain.Job, error) {
	var rec jobRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return toDomainJob(rec), nil
}

func (r *JobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	var recs []jobRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	jobs := make([]*domain.Job, len(recs))
	for i, rec := range recs {
		jobs[i] = toDomainJob(rec)
	}
	return jobs, nil
}

func (r *JobRepository) Update(ctx context.Context, j *domain.Job) error {
	rec := toJobRecord(j)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&rec).Error
	})
	return translateWriteError(err)
}

func (r *JobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&jobRecord{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrJobNotFound
		}
		return nil
	})
}
