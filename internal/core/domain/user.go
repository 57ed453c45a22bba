package domain

import "time"

const RoleAdmin = "admin"

// User models an authenticated actor. It exists only for authentication and
// audit stamping; handlers expose at most {id, email, role}.
type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
