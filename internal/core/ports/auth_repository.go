package ports

import (
	"context"

	"github.com/zynor/field-service-api/internal/core/domain"
)

// UserRepository defines persistence for authentication principals.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
