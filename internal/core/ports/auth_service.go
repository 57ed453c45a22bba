package ports

import (
	"context"

	"github.com/zynor/field-service-api/internal/core/domain"
)

// AuthService implements stateless token-based authentication. Tokens are
// self-contained; only is_active is re-checked against storage per request.
type AuthService interface {
	// Login verifies credentials and returns a signed access token.
	// Unknown users, wrong passwords, and inactive accounts all fail with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// IssueToken signs a token carrying the subject email and an absolute expiry.
	IssueToken(subjectEmail string) (string, error)
	// VerifyToken returns the subject email, or domain.ErrInvalidCredentials
	// when the token is malformed, tampered with, or expired.
	VerifyToken(token string) (string, error)
	// ResolvePrincipal loads the active user for a verified subject.
	ResolvePrincipal(ctx context.Context, subjectEmail string) (*domain.User, error)
	// HashPassword produces a salted one-way hash of plain.
	HashPassword(plain string) (string, error)
	// EnsureAdmin idempotently seeds an admin account from configuration.
	EnsureAdmin(ctx context.Context, email, password string) error
}
