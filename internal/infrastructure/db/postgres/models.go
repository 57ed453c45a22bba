package postgres

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/zynor/field-service-api/internal/core/domain"
)

// Record structs are the storage-side shapes; domain entities stay free of
// persistence tags. Skills are serialized to a JSON array column so the
// postgres containment operator can test membership.

type userRecord struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"size:120;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:hashed_password;not null"`
	Role         string    `gorm:"size:30;not null;default:'admin'"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

type technicianRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName       string    `gorm:"size:100;not null"`
	LastName        string    `gorm:"size:100;not null"`
	Email           string    `gorm:"size:120;not null;uniqueIndex"`
	Phone           *string   `gorm:"size:25;uniqueIndex"`
	Skills          string    `gorm:"type:jsonb;not null;default:'[]'"`
	HourlyRate      *float64
	IsActive        bool `gorm:"not null;default:true"`
	CreatedByUserID *uint
	UpdatedByUserID *uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (technicianRecord) TableName() string { return "technicians" }

type customerRecord struct {
	ID      uint    `gorm:"primaryKey"`
	Name    string  `gorm:"not null"`
	Phone   *string
	Email   *string
	Address *string
}

func (customerRecord) TableName() string { return "customers" }

type jobRecord struct {
	ID               uint    `gorm:"primaryKey"`
	Title            string  `gorm:"not null"`
	Description      *string
	Status           string `gorm:"not null;default:'NEW'"`
	ScheduledStartAt *time.Time
	ScheduledEndAt   *time.Time
	CustomerID       uint              `gorm:"not null;index"`
	Customer         *customerRecord   `gorm:"foreignKey:CustomerID"`
	TechnicianID     *uuid.UUID        `gorm:"type:uuid;index"`
	Technician       *technicianRecord `gorm:"foreignKey:TechnicianID"`
	CreatedByUserID  *uint             `gorm:"index"`
	UpdatedByUserID  *uint             `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (jobRecord) TableName() string { return "jobs" }

// --- mapping helpers ---

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func marshalSkills(skills []string) string {
	if skills == nil {
		skills = []string{}
	}
	data, err := json.Marshal(skills)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func unmarshalSkills(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return []string{}
	}
	return skills
}

func toUserRecord(u *domain.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toDomainUser(r userRecord) *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toTechnicianRecord(t *domain.Technician) technicianRecord {
	return technicianRecord{
		ID:              t.ID,
		FirstName:       t.FirstName,
		LastName:        t.LastName,
		Email:           t.Email,
		Phone:           nullableString(t.Phone),
		Skills:          marshalSkills(t.Skills),
		HourlyRate:      t.HourlyRate,
		IsActive:        t.IsActive,
		CreatedByUserID: t.CreatedByUserID,
		UpdatedByUserID: t.UpdatedByUserID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func toDomainTechnician(r technicianRecord) *domain.Technician {
	return &domain.Technician{
		ID:              r.ID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           stringValue(r.Phone),
		Skills:          unmarshalSkills(r.Skills),
		HourlyRate:      r.HourlyRate,
		IsActive:        r.IsActive,
		CreatedByUserID: r.CreatedByUserID,
		UpdatedByUserID: r.UpdatedByUserID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toCustomerRecord(c *domain.Customer) customerRecord {
	return customerRecord{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   nullableString(c.Phone),
		Email:   nullableString(c.Email),
		Address: nullableString(c.Address),
	}
}

func toDomainCustomer(r customerRecord) *domain.Customer {
	return &domain.Customer{
		ID:      r.ID,
		Name:    r.Name,
		Phone:   stringValue(r.Phone),
		Email:   stringValue(r.Email),
		Address: stringValue(r.Address),
	}
}

func toJobRecord(j *domain.Job) jobRecord {
	return jobRecord{
		ID:               j.ID,
		Title:            j.Title,
		Description:      nullableString(j.Description),
		Status:           j.Status,
		ScheduledStartAt: j.ScheduledStartAt,
		ScheduledEndAt:   j.ScheduledEndAt,
		CustomerID:       j.CustomerID,
		TechnicianID:     j.TechnicianID,
		CreatedByUserID:  j.CreatedByUserID,
		UpdatedByUserID:  j.UpdatedByUserID,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func toDomainJob(r jobRecord) *domain.Job {
	return &domain.Job{
		ID:               r.ID,
		Title:            r.Title,
		Description:      stringValue(r.Description),
		Status:           r.Status,
		ScheduledStartAt: r.ScheduledStartAt,
		ScheduledEndAt:   r.ScheduledEndAt,
		CustomerID:       r.CustomerID,
		TechnicianID:     r.TechnicianID,
		CreatedByUserID:  r.CreatedByUserID,
		UpdatedByUserID:  r.UpdatedByUserID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
