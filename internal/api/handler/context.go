package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/zynor/field-service-api/internal/core/domain"
)

// principalFrom extracts the authenticated user injected by the Auth or
// OptionalAuth middleware. Returns nil for anonymous requests.
func principalFrom(c echo.Context) *domain.User {
	principal, _ := c.Get("principal").(*domain.User)
	return principal
}

// actorID returns the principal's ID for audit stamping, or nil when the
// request is anonymous.
func actorID(c echo.Context) *uint {
	principal := principalFrom(c)
	if principal == nil {
		return nil
	}
	id := principal.ID
	return &id
}
