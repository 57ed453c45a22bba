package ports

import (
	"context"

	"github.com/zynor/field-service-api/internal/core/domain"
)

// CreateCustomerInput carries the customer create payload.
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// UpdateCustomerInput merges only the provided fields; nil means absent.
type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// CustomerRepository defines persistence for customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	FindByID(ctx context.Context, id uint) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id uint) error
}

// CustomerService defines the customer CRUD use cases.
type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	Get(ctx context.Context, id uint) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, id uint, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uint) error
}
