package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zynor/field-service-api/internal/core/domain"
	"github.com/zynor/field-service-api/internal/core/ports"
)

// sortableColumns whitelists the sort tokens the list endpoint accepts.
// Unknown tokens are silently ignored by contract.
var sortableColumns = map[string]string{
	"first_name":  "first_name",
	"last_name":   "last_name",
	"email":       "email",
	"phone":       "phone",
	"hourly_rate": "hourly_rate",
	"is_active":   "is_active",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

const defaultTechnicianOrder = "first_name ASC, last_name ASC"

// TechnicianRepository persists technicians through gorm. Every mutation is
// its own transaction: committed on success, rolled back on any error.
type TechnicianRepository struct {
	db *gorm.DB
}

func NewTechnicianRepository(db *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

func (r *TechnicianRepository) Create(ctx context.Context, t *domain.Technician) error {
	rec := toTechnicianRecord(t)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rec).Error
	})
	return translateWriteError(err)
}

func (r *TechnicianRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error) {
	var rec technicianRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTechnicianNotFound
		}
		return nil, err
	}
	return toDomainTechnician(rec), nil
}

// List applies filters, counts the total independently of the page slice,
// then sorts and slices. No filter or sort combination is an error.
func (r *TechnicianRepository) List(ctx context.Context, f ports.ListTechniciansFilter) ([]*domain.Technician, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (f.Page - 1) * f.PageSize
	if offset < 0 {
		offset = 0
	}

	var recs []technicianRecord
	err := r.filtered(ctx, f).
		Order(orderClause(f.Sort)).
		Offset(offset).
		Limit(f.PageSize).
		Find(&recs).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]*domain.Technician, len(recs))
	for i, rec := range recs {
		items[i] = toDomainTechnician(rec)
	}
	return items, total, nil
}

// filtered builds a fresh query with all list filters applied (AND-combined).
func (r *TechnicianRepository) filtered(ctx context.Context, f ports.ListTechniciansFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&technicianRecord{})

	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?",
			like, like, like, like,
		)
	}
	if s := strings.TrimSpace(f.FirstName); s != "" {
		q = q.Where("LOWER(first_name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.LastName); s != "" {
		q = q.Where("LOWER(last_name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.Email); s != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	if skill := strings.TrimSpace(f.Skill); skill != "" {
		if r.db.Dialector.Name() == "postgres" {
			member, _ := json.Marshal([]string{skill})
			q = q.Where("skills @> ?", string(member))
		} else {
			// Engines without JSONB containment degrade to a case-insensitive
			// substring match over the serialized skills column. This is a
			// documented fallback, not an error.
			q = q.Where("LOWER(skills) LIKE ?", "%"+strings.ToLower(skill)+"%")
		}
	}
	if f.MinRate != nil {
		q = q.Where("hourly_rate >= ?", *f.MinRate)
	}
	if f.MaxRate != nil {
		q = q.Where("hourly_rate <= ?", *f.MaxRate)
	}
	return q
}

// orderClause turns sort tokens into an ORDER BY clause. A "-" prefix means
// descending; tokens outside sortableColumns are dropped. With no valid
// token left, the default order applies.
func orderClause(sort []string) string {
	clauses := make([]string, 0, len(sort))
	for _, token := range sort {
		token = strings.TrimSpace(token)
		direction := "ASC"
		if strings.HasPrefix(token, "-") {
			direction = "DESC"
			token = token[1:]
		}
		col, ok := sortableColumns[token]
		if !ok {
			continue
		}
		clauses = append(clauses, col+" "+direction)
	}
	if len(clauses) == 0 {
		return defaultTechnicianOrder
	}
	return strings.Join(clauses, ", ")
}

func (r *TechnicianRepository) EmailInUse(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&technicianRecord{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TechnicianRepository) PhoneInUse(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&technicianRecord{}).
		Where("phone = ? AND id <> ?", phone, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TechnicianRepository) Update(ctx context.Context, t *domain.Technician) error {
	rec := toTechnicianRecord(t)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&rec).Error
	})
	return translateWriteError(err)
}

func (r *TechnicianRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&technicianRecord{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrTechnicianNotFound
		}
		return nil
	})
}
