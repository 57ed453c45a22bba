package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zynor/field-service-api/internal/core/domain"
	"github.com/zynor/field-service-api/internal/core/ports"
)

// CustomerService implements the plain customer CRUD paths. Customers have
// no dynamic filtering and no patch whitelist; partial updates merge only
// the provided fields.
type CustomerService struct {
	repo ports.CustomerRepository
	log  zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, log zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, log: log}
}

func (s *CustomerService) Create(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("must not be empty", "name")
	}

	customer := &domain.Customer{
		Name:    name,
		Phone:   strings.TrimSpace(input.Phone),
		Address: strings.TrimSpace(input.Address),
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		normalized, err := normalizeEmail(email)
		if err != nil {
			return nil, err
		}
		customer.Email = normalized
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	s.log.Info().Uint("customer_id", customer.ID).Msg("customer created")
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id uint) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Update(ctx context.Context, id uint, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.NewValidationError("must not be empty", "name")
		}
		customer.Name = name
	}
	if input.Phone != nil {
		customer.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		if email := strings.TrimSpace(*input.Email); email == "" {
			customer.Email = ""
		} else {
			normalized, err := normalizeEmail(email)
			if err != nil {
				return nil, err
			}
			customer.Email = normalized
		}
	}
	if input.Address != nil {
		customer.Address = strings.TrimSpace(*input.Address)
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
