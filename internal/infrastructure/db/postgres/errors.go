package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zynor/field-service-api/internal/core/domain"
)

// translateWriteError converts constraint violations raised at commit time
// into domain errors so callers never observe a raw storage exception. The
// colliding field is named when determinable from the constraint.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return duplicateFieldError(pgErr.ConstraintName + " " + pgErr.Detail)
		case "23503": // foreign_key_violation
			return domain.ErrInvalidReference
		}
		return err
	}

	// Non-postgres engines (the sqlite test store) only expose the message.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint"), strings.Contains(msg, "duplicate key"):
		return duplicateFieldError(msg)
	case strings.Contains(msg, "foreign key constraint"):
		return domain.ErrInvalidReference
	}
	return err
}

func duplicateFieldError(detail string) error {
	detail = strings.ToLower(detail)
	switch {
	case strings.Contains(detail, "email"):
		return domain.ErrEmailTaken
	case strings.Contains(detail, "phone"):
		return domain.ErrPhoneTaken
	default:
		return domain.ErrDuplicate
	}
}
