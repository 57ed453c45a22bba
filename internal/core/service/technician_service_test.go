package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zynor/field-service-api/internal/core/domain"
	"github.com/zynor/field-service-api/internal/core/ports"
)

type stubTechnicianRepo struct {
	techs map[uuid.UUID]*domain.Technician
}

func newStubTechnicianRepo() *stubTechnicianRepo {
	return &stubTechnicianRepo{techs: make(map[uuid.UUID]*domain.Technician)}
}

func cloneTechnician(t *domain.Technician) *domain.Technician {
	if t == nil {
		return nil
	}
	clone := *t
	clone.Skills = append([]string(nil), t.Skills...)
	return &clone
}

func (r *stubTechnicianRepo) Create(_ context.Context, tech *domain.Technician) error {
	for _, existing := range r.techs {
		if existing.Email == tech.Email {
			return domain.ErrEmailTaken
		}
		if tech.Phone != "" && existing.Phone == tech.Phone {
			return domain.ErrPhoneTaken
		}
	}
	r.techs[tech.ID] = cloneTechnician(tech)
	return nil
}

func (r *stubTechnicianRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Technician, error) {
	if tech, ok := r.techs[id]; ok {
		return cloneTechnician(tech), nil
	}
	return nil, domain.ErrTechnicianNotFound
}

func (r *stubTechnicianRepo) List(_ context.Context, _ ports.ListTechniciansFilter) ([]*domain.Technician, int64, error) {
	out := make([]*domain.Technician, 0, len(r.techs))
	for _, tech := range r.techs {
		out = append(out, cloneTechnician(tech))
	}
	return out, int64(len(out)), nil
}

func (r *stubTechnicianRepo) EmailInUse(_ context.Context, email string, excludeID uuid.UUID) (bool, error) {
	for id, tech := range r.techs {
		if id != excludeID && tech.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubTechnicianRepo) PhoneInUse(_ context.Context, phone string, excludeID uuid.UUID) (bool, error) {
	for id, tech := range r.techs {
		if id != excludeID && tech.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubTechnicianRepo) Update(_ context.Context, tech *domain.Technician) error {
	if _, ok := r.techs[tech.ID]; !ok {
		return domain.ErrTechnicianNotFound
	}
	r.techs[tech.ID] = cloneTechnician(tech)
	return nil
}

func (r *stubTechnicianRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.techs[id]; !ok {
		return domain.ErrTechnicianNotFound
	}
	delete(r.techs, id)
	return nil
}

func newTechnicianService(repo *stubTechnicianRepo) *TechnicianService {
	return NewTechnicianService(repo, zerolog.Nop())
}

func mustCreate(t *testing.T, svc *TechnicianService, input ports.CreateTechnicianInput) *domain.Technician {
	t.Helper()
	tech, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create technician: %v", err)
	}
	return tech
}

func TestTechnicianService_Create_Normalizes(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	tech := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "  Jane ",
		LastName:  " Doe ",
		Email:     " Jane@Example.COM ",
		Phone:     " +1 555-0100 ",
		Skills:    []string{" Java ", "java", "Go"},
	})

	if tech.FirstName != "Jane" || tech.LastName != "Doe" {
		t.Fatalf("names not trimmed: %q %q", tech.FirstName, tech.LastName)
	}
	if tech.Email != "jane@example.com" {
		t.Fatalf("email not normalized: %q", tech.Email)
	}
	if tech.Phone != "+1 555-0100" {
		t.Fatalf("phone not trimmed: %q", tech.Phone)
	}
	if !reflect.DeepEqual(tech.Skills, []string{"Java", "Go"}) {
		t.Fatalf("skills not de-duplicated case-insensitively: %v", tech.Skills)
	}
	if !tech.IsActive {
		t.Fatalf("expected is_active to default to true")
	}
	if tech.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
}

func TestTechnicianService_Create_InvalidEmail(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	_, err := svc.Create(context.Background(), ports.CreateTechnicianInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "not-an-email",
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTechnicianService_Create_InvalidPhone(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	_, err := svc.Create(context.Background(), ports.CreateTechnicianInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "abc",
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(ve.Error(), "phone") {
		t.Fatalf("expected phone in message, got %q", ve.Error())
	}
}

func TestTechnicianService_Create_NegativeRate(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	rate := -10.0
	_, err := svc.Create(context.Background(), ports.CreateTechnicianInput{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		HourlyRate: &rate,
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTechnicianService_Create_TooManySkills(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	skills := make([]string, 21)
	for i := range skills {
		skills[i] = strings.Repeat("s", i+1)
	}
	_, err := svc.Create(context.Background(), ports.CreateTechnicianInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Skills:    skills,
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTechnicianService_Create_DuplicateEmail(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})
	_, err := svc.Create(context.Background(), ports.CreateTechnicianInput{
		FirstName: "Janet", LastName: "Doe", Email: "JANE@example.com",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestTechnicianService_Create_AuditStamp(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	actor := uint(7)
	tech := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		ActorID: &actor,
	})
	if tech.CreatedByUserID == nil || *tech.CreatedByUserID != 7 {
		t.Fatalf("expected created_by to be stamped, got %v", tech.CreatedByUserID)
	}
	if tech.UpdatedByUserID == nil || *tech.UpdatedByUserID != 7 {
		t.Fatalf("expected updated_by to be stamped, got %v", tech.UpdatedByUserID)
	}
}

func TestTechnicianService_Update_EmailConflict(t *testing.T) {
	repo := newStubTechnicianRepo()
	svc := newTechnicianService(repo)

	mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})
	bob := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Bob", LastName: "Smith", Email: "bob@example.com",
	})

	_, err := svc.Update(context.Background(), bob.ID, ports.UpdateTechnicianInput{
		FirstName: "Bob", LastName: "Smith", Email: "jane@example.com",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestTechnicianService_Update_PhoneConflict(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Phone: "+1 555-0100",
	})
	bob := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Bob", LastName: "Smith", Email: "bob@example.com",
	})

	_, err := svc.Update(context.Background(), bob.ID, ports.UpdateTechnicianInput{
		FirstName: "Bob", LastName: "Smith", Phone: "+1 555-0100",
	})
	if !errors.Is(err, domain.ErrPhoneTaken) {
		t.Fatalf("expected ErrPhoneTaken, got %v", err)
	}
}

func TestTechnicianService_Update_EmptyFieldsUntouched(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	rate := 42.5
	tech := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Phone: "+1 555-0100", HourlyRate: &rate,
	})

	updated, err := svc.Update(context.Background(), tech.ID, ports.UpdateTechnicianInput{
		FirstName: "Janet", LastName: "Doe",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FirstName != "Janet" {
		t.Fatalf("first name not updated: %q", updated.FirstName)
	}
	if updated.Email != "jane@example.com" {
		t.Fatalf("empty email should leave stored value, got %q", updated.Email)
	}
	if updated.Phone != "+1 555-0100" {
		t.Fatalf("empty phone should leave stored value, got %q", updated.Phone)
	}
	if updated.HourlyRate == nil || *updated.HourlyRate != 42.5 {
		t.Fatalf("hourly rate must not change on full update, got %v", updated.HourlyRate)
	}
	if !updated.IsActive {
		t.Fatalf("nil is_active should leave stored value")
	}
}

func TestTechnicianService_Update_NotFound(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	_, err := svc.Update(context.Background(), uuid.New(), ports.UpdateTechnicianInput{
		FirstName: "Jane", LastName: "Doe",
	})
	if !errors.Is(err, domain.ErrTechnicianNotFound) {
		t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
	}
}

func TestTechnicianService_Patch_UnknownKeysFailClosed(t *testing.T) {
	repo := newStubTechnicianRepo()
	svc := newTechnicianService(repo)

	tech := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})

	_, err := svc.Patch(context.Background(), tech.ID, ports.PatchTechnicianInput{
		Fields: map[string]any{
			"first_name": "Janet",
			"salary":     100,
			"id":         "x",
		},
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg := ve.Error()
	if !strings.Contains(msg, "id") || !strings.Contains(msg, "salary") {
		t.Fatalf("expected both unknown keys in message, got %q", msg)
	}

	// Nothing may have been applied.
	stored, _ := repo.FindByID(context.Background(), tech.ID)
	if stored.FirstName != "Jane" {
		t.Fatalf("patch must be fail-closed, first name changed to %q", stored.FirstName)
	}
}

func TestTechnicianService_Patch_EmptyPayload(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	tech := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})

	_, err := svc.Patch(context.Background(), tech.ID, ports.PatchTechnicianInput{
		Fields: map[string]any{},
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTechnicianService_Patch_AppliesFields(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	tech := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})

	actor := uint(3)
	patched, err := svc.Patch(context.Background(), tech.ID, ports.PatchTechnicianInput{
		Fields: map[string]any{
			"first_name":  "Janet",
			"email":       " Janet@Example.com ",
			"is_active":   false,
			"hourly_rate": 55.0,
		},
		ActorID: &actor,
	})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.FirstName != "Janet" {
		t.Fatalf("first name not applied: %q", patched.FirstName)
	}
	if patched.Email != "janet@example.com" {
		t.Fatalf("email not normalized: %q", patched.Email)
	}
	if patched.IsActive {
		t.Fatalf("is_active not applied")
	}
	if patched.HourlyRate == nil || *patched.HourlyRate != 55.0 {
		t.Fatalf("hourly_rate not applied: %v", patched.HourlyRate)
	}
	if patched.UpdatedByUserID == nil || *patched.UpdatedByUserID != 3 {
		t.Fatalf("updated_by not stamped: %v", patched.UpdatedByUserID)
	}
}

func TestTechnicianService_Patch_SkillsExactDedup(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	tech := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})

	patched, err := svc.Patch(context.Background(), tech.ID, ports.PatchTechnicianInput{
		Fields: map[string]any{
			"skills": []any{" Go ", "Go", "go", "", "HVAC"},
		},
	})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	// Patch de-duplicates by exact match: "Go" and "go" both survive.
	if !reflect.DeepEqual(patched.Skills, []string{"Go", "go", "HVAC"}) {
		t.Fatalf("unexpected skills: %v", patched.Skills)
	}
}

func TestTechnicianService_Patch_TypeMismatch(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	tech := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})

	cases := map[string]any{
		"first_name":  42,
		"is_active":   "yes",
		"skills":      "Go",
		"hourly_rate": "55",
	}
	for key, value := range cases {
		_, err := svc.Patch(context.Background(), tech.ID, ports.PatchTechnicianInput{
			Fields: map[string]any{key: value},
		})
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("key %q: expected validation error, got %v", key, err)
		}
	}
}

func TestTechnicianService_Patch_NameTooLong(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	tech := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})

	_, err := svc.Patch(context.Background(), tech.ID, ports.PatchTechnicianInput{
		Fields: map[string]any{"first_name": strings.Repeat("x", 81)},
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error for 81-char name, got %v", err)
	}
}

func TestTechnicianService_LengthCapsCountCharacters(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	// 90 two-byte characters exceed 100 bytes but stay under the 100-character
	// create cap; the caps count characters, not encoded length.
	name := strings.Repeat("é", 90)
	tech := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: name, LastName: "Doe", Email: "jane@example.com",
	})
	if tech.FirstName != name {
		t.Fatalf("multibyte name not kept: %q", tech.FirstName)
	}

	patched, err := svc.Patch(context.Background(), tech.ID, ports.PatchTechnicianInput{
		Fields: map[string]any{"last_name": strings.Repeat("ü", 80)},
	})
	if err != nil {
		t.Fatalf("patch with 80-character multibyte name: %v", err)
	}
	if patched.LastName != strings.Repeat("ü", 80) {
		t.Fatalf("multibyte patch name not kept: %q", patched.LastName)
	}
}

func TestTechnicianService_Delete(t *testing.T) {
	repo := newStubTechnicianRepo()
	svc := newTechnicianService(repo)

	tech := mustCreate(t, svc, ports.CreateTechnicianInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})
	if err := svc.Delete(context.Background(), tech.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), tech.ID); !errors.Is(err, domain.ErrTechnicianNotFound) {
		t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
	}
}

func TestTechnicianService_List_Defaults(t *testing.T) {
	svc := newTechnicianService(newStubTechnicianRepo())

	result, err := svc.List(context.Background(), ports.ListTechniciansFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Page != 1 || result.PageSize != 25 {
		t.Fatalf("expected defaults page=1 page_size=25, got %d/%d", result.Page, result.PageSize)
	}
}
