package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobStatusNew is the status assigned to jobs created without one.
const JobStatusNew = "NEW"

// Job is a unit of scheduled work for a customer, optionally assigned to a
// technician.
type Job struct {
	ID               uint       `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Status           string     `json:"status"`
	ScheduledStartAt *time.Time `json:"scheduled_start_at,omitempty"`
	ScheduledEndAt   *time.Time `json:"scheduled_end_at,omitempty"`
	CustomerID       uint       `json:"customer_id"`
	TechnicianID     *uuid.UUID `json:"technician_id,omitempty"`
	CreatedByUserID  *uint      `json:"created_by_user_id,omitempty"`
	UpdatedByUserID  *uint      `json:"updated_by_user_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
