package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zynor/field-service-api/internal/core/domain"
	"github.com/zynor/field-service-api/internal/core/ports"
)

type stubCustomerRepo struct {
	customers map[uint]*domain.Customer
	nextID    uint
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uint]*domain.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uint) (*domain.Customer, error) {
	if c, ok := r.customers[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func TestCustomerService_Create_Normalizes(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo(), zerolog.Nop())

	customer, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name:  "  Acme Corp ",
		Email: " Billing@Acme.COM ",
		Phone: " +1 555-0100 ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if customer.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if customer.Name != "Acme Corp" {
		t.Fatalf("name not trimmed: %q", customer.Name)
	}
	if customer.Email != "billing@acme.com" {
		t.Fatalf("email not normalized: %q", customer.Email)
	}
}

func TestCustomerService_Create_NameRequired(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "   "})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCustomerService_Update_MergesProvidedFields(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo(), zerolog.Nop())

	customer, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name: "Acme Corp", Email: "billing@acme.com", Phone: "+1 555-0100",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Acme Inc"
	updated, err := svc.Update(context.Background(), customer.ID, ports.UpdateCustomerInput{
		Name: &name,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Acme Inc" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.Email != "billing@acme.com" || updated.Phone != "+1 555-0100" {
		t.Fatalf("absent fields must not change: %+v", updated)
	}

	// Providing an empty email clears it; absence leaves it alone.
	empty := ""
	updated, err = svc.Update(context.Background(), customer.ID, ports.UpdateCustomerInput{
		Email: &empty,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Email != "" {
		t.Fatalf("expected email cleared, got %q", updated.Email)
	}
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo(), zerolog.Nop())

	name := "Ghost"
	_, err := svc.Update(context.Background(), 99, ports.UpdateCustomerInput{Name: &name})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerService_Delete(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo(), zerolog.Nop())

	customer, _ := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "Acme"})
	if err := svc.Delete(context.Background(), customer.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), customer.ID); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
