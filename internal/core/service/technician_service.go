package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zynor/field-service-api/internal/core/domain"
	"github.com/zynor/field-service-api/internal/core/ports"
)

var (
	phoneRe = regexp.MustCompile(`^\+?[0-9\-()\s]{7,20}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// patchableFields is the whitelist of keys a partial update may touch.
// Anything else fails the whole operation.
var patchableFields = map[string]struct{}{
	"first_name":  {},
	"last_name":   {},
	"email":       {},
	"phone":       {},
	"is_active":   {},
	"skills":      {},
	"hourly_rate": {},
}

// TechnicianService implements the technician query and mutation engines.
type TechnicianService struct {
	repo ports.TechnicianRepository
	log  zerolog.Logger
}

func NewTechnicianService(repo ports.TechnicianRepository, log zerolog.Logger) *TechnicianService {
	return &TechnicianService{repo: repo, log: log}
}

// Create normalizes the payload, then inserts. A unique violation at commit
// time surfaces as a domain conflict, never a raw storage error.
func (s *TechnicianService) Create(ctx context.Context, input ports.CreateTechnicianInput) (*domain.Technician, error) {
	firstName, err := normalizeName("first_name", input.FirstName, 100)
	if err != nil {
		return nil, err
	}
	lastName, err := normalizeName("last_name", input.LastName, 100)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(input.Phone)
	if phone != "" && !phoneRe.MatchString(phone) {
		return nil, domain.NewValidationError("invalid phone format", "phone")
	}

	skills, err := normalizeSkills(input.Skills)
	if err != nil {
		return nil, err
	}

	if input.HourlyRate != nil && *input.HourlyRate < 0 {
		return nil, domain.NewValidationError("must be a non-negative number", "hourly_rate")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now().UTC()
	tech := &domain.Technician{
		ID:              uuid.New(),
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Phone:           phone,
		Skills:          skills,
		HourlyRate:      input.HourlyRate,
		IsActive:        isActive,
		CreatedByUserID: input.ActorID,
		UpdatedByUserID: input.ActorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, tech); err != nil {
		return nil, err
	}

	s.log.Info().Str("technician_id", tech.ID.String()).Str("email", tech.Email).Msg("technician created")
	return tech, nil
}

func (s *TechnicianService) Get(ctx context.Context, id uuid.UUID) (*domain.Technician, error) {
	return s.repo.FindByID(ctx, id)
}

// List builds a filtered, sorted, paginated view. Total is counted
// independently of the page slice so pagination metadata stays correct
// across pages.
func (s *TechnicianService) List(ctx context.Context, filter ports.ListTechniciansFilter) (*ports.ListTechniciansResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 25
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ListTechniciansResult{
		Items:    items,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}, nil
}

// Update replaces the mutable fields from the PUT payload. Changed email or
// phone is pre-checked against other rows so the conflict message is
// client-safe; the storage constraint remains the final authority.
func (s *TechnicianService) Update(ctx context.Context, id uuid.UUID, input ports.UpdateTechnicianInput) (*domain.Technician, error) {
	tech, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if email := strings.TrimSpace(input.Email); email != "" {
		email, err = normalizeEmail(email)
		if err != nil {
			return nil, err
		}
		if email != tech.Email {
			taken, err := s.repo.EmailInUse(ctx, email, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.ErrEmailTaken
			}
			tech.Email = email
		}
	}

	if phone := strings.TrimSpace(input.Phone); phone != "" {
		if !phoneRe.MatchString(phone) {
			return nil, domain.NewValidationError("invalid phone format", "phone")
		}
		if phone != tech.Phone {
			taken, err := s.repo.PhoneInUse(ctx, phone, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.ErrPhoneTaken
			}
			tech.Phone = phone
		}
	}

	firstName, err := normalizeName("first_name", input.FirstName, 100)
	if err != nil {
		return nil, err
	}
	lastName, err := normalizeName("last_name", input.LastName, 100)
	if err != nil {
		return nil, err
	}
	skills, err := normalizeSkills(input.Skills)
	if err != nil {
		return nil, err
	}

	tech.FirstName = firstName
	tech.LastName = lastName
	tech.Skills = skills
	if input.IsActive != nil {
		tech.IsActive = *input.IsActive
	}
	tech.UpdatedByUserID = input.ActorID
	tech.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, tech); err != nil {
		return nil, err
	}
	return tech, nil
}

// Patch applies a partial update. The payload keys must be a subset of the
// whitelist; violations fail the whole operation before any field is
// applied (fail-closed, not fail-partial).
func (s *TechnicianService) Patch(ctx context.Context, id uuid.UUID, input ports.PatchTechnicianInput) (*domain.Technician, error) {
	tech, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(input.Fields) == 0 {
		return nil, domain.NewValidationError("no fields to update")
	}

	var unknown []string
	for key := range input.Fields {
		if _, ok := patchableFields[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, domain.NewValidationError("unsupported field(s)", unknown...)
	}

	for key, value := range input.Fields {
		if err := applyPatchField(tech, key, value); err != nil {
			return nil, err
		}
	}

	tech.UpdatedByUserID = input.ActorID
	tech.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, tech); err != nil {
		return nil, err
	}

	s.log.Info().Str("technician_id", tech.ID.String()).Int("fields", len(input.Fields)).Msg("technician patched")
	return tech, nil
}

// Delete hard-removes the technician.
func (s *TechnicianService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// applyPatchField coerces and applies a single whitelisted patch field.
// Patch rules are intentionally looser than create/update: names cap at 80,
// phone caps at 25 without format re-validation, and skills de-duplicate by
// exact match rather than case-insensitively.
func applyPatchField(tech *domain.Technician, key string, value any) error {
	switch key {
	case "first_name", "last_name":
		str, ok := value.(string)
		if !ok {
			return domain.NewValidationError("must be a string", key)
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return domain.NewValidationError("must not be empty", key)
		}
		if utf8.RuneCountInString(str) > 80 {
			return domain.NewValidationError("must be at most 80 characters", key)
		}
		if key == "first_name" {
			tech.FirstName = str
		} else {
			tech.LastName = str
		}
	case "email":
		str, ok := value.(string)
		if !ok {
			return domain.NewValidationError("must be a string", key)
		}
		email, err := normalizeEmail(str)
		if err != nil {
			return err
		}
		tech.Email = email
	case "phone":
		str, ok := value.(string)
		if !ok {
			return domain.NewValidationError("must be a string", key)
		}
		str = strings.TrimSpace(str)
		if utf8.RuneCountInString(str) > 25 {
			return domain.NewValidationError("must be at most 25 characters", key)
		}
		tech.Phone = str
	case "is_active":
		b, ok := value.(bool)
		if !ok {
			return domain.NewValidationError("must be a boolean", key)
		}
		tech.IsActive = b
	case "skills":
		raw, ok := value.([]any)
		if !ok {
			return domain.NewValidationError("must be a list of strings", key)
		}
		skills, err := normalizePatchSkills(raw)
		if err != nil {
			return err
		}
		tech.Skills = skills
	case "hourly_rate":
		num, ok := value.(float64)
		if !ok {
			return domain.NewValidationError("must be a non-negative number", key)
		}
		if num < 0 {
			return domain.NewValidationError("must be a non-negative number", key)
		}
		rate := num
		tech.HourlyRate = &rate
	}
	return nil
}

func normalizeName(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", domain.NewValidationError("must not be empty", field)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return "", domain.NewValidationError(fmt.Sprintf("must be at most %d characters", maxLen), field)
	}
	return value, nil
}

func normalizeEmail(value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if !emailRe.MatchString(value) {
		return "", domain.NewValidationError("must be a valid email", "email")
	}
	return value, nil
}

// normalizeSkills enforces the create/update rule: at most 20 entries, each
// 1-50 chars after trim, de-duplicated case-insensitively with the
// first-seen casing kept.
func normalizeSkills(in []string) ([]string, error) {
	if in == nil {
		return nil, nil
	}
	if len(in) > 20 {
		return nil, domain.NewValidationError("at most 20 skills allowed", "skills")
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, skill := range in {
		skill = strings.TrimSpace(skill)
		if n := utf8.RuneCountInString(skill); n < 1 || n > 50 {
			return nil, domain.NewValidationError("each skill must be 1-50 characters", "skills")
		}
		lower := strings.ToLower(skill)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, skill)
	}
	return out, nil
}

// normalizePatchSkills enforces the patch rule: entries trimmed, capped at
// 40 chars, blanks dropped, de-duplicated by exact string match.
func normalizePatchSkills(in []any) ([]string, error) {
	cleaned := make([]string, 0, len(in))
	for _, v := range in {
		str, ok := v.(string)
		if !ok {
			return nil, domain.NewValidationError("must be a list of strings", "skills")
		}
		str = strings.TrimSpace(str)
		if str == "" {
			continue
		}
		if utf8.RuneCountInString(str) > 40 {
			return nil, domain.NewValidationError("each skill must be at most 40 characters", "skills")
		}
		cleaned = append(cleaned, str)
	}
	seen := make(map[string]struct{}, len(cleaned))
	out := make([]string, 0, len(cleaned))
	for _, skill := range cleaned {
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out, nil
}
