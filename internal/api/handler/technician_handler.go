package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/zynor/field-service-api/internal/api/metrics"
	"github.com/zynor/field-service-api/internal/core/domain"
	"github.com/zynor/field-service-api/internal/core/ports"
)

// TechnicianHandler handles HTTP requests for technician operations.
type TechnicianHandler struct {
	service ports.TechnicianService
}

func NewTechnicianHandler(service ports.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{service: service}
}

// Create handles POST /technicians.
//
// @Summary      Create a technician
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Param        body  body      createTechnicianRequest  true  "Technician details"
// @Success      201   {object}  technicianResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /technicians [post]
func (h *TechnicianHandler) Create(c echo.Context) error {
	var req createTechnicianRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	technician, err := h.service.Create(c.Request().Context(), ports.CreateTechnicianInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Skills:     req.Skills,
		HourlyRate: req.HourlyRate,
		IsActive:   req.IsActive,
		ActorID:    actorID(c),
	})
	if err != nil {
		countConflict(err)
		return err
	}

	metrics.TechniciansCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTechnicianResponse(technician))
}

// List handles GET /technicians with free-text search, per-field filters,
// multi-key sorting, and pagination.
//
// @Summary      List technicians
// @Tags         technicians
// @Produce      json
// @Param        q          query     string   false  "Free-text search across names, email, and phone"
// @Param        first_name query     string   false  "Filter by first name (substring, case-insensitive)"
// @Param        last_name  query     string   false  "Filter by last name (substring, case-insensitive)"
// @Param        email      query     string   false  "Filter by email (substring, case-insensitive)"
// @Param        is_active  query     bool     false  "Filter by active flag"
// @Param        skill      query     string   false  "Filter by skill membership"
// @Param        min_rate   query     number   false  "Minimum hourly rate (inclusive)"
// @Param        max_rate   query     number   false  "Maximum hourly rate (inclusive)"
// @Param        sort       query     []string false  "Sort keys, e.g. -hourly_rate,last_name"
// @Param        page       query     int      false  "Page number (default 1)"
// @Param        page_size  query     int      false  "Page size (default 25)"
// @Success      200        {object}  listTechniciansResponse
// @Failure      422        {object}  map[string]string
// @Router       /technicians [get]
func (h *TechnicianHandler) List(c echo.Context) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListTechniciansResponse(result))
}

// Get handles GET /technicians/:id.
//
// @Summary      Get a technician by ID
// @Tags         technicians
// @Produce      json
// @Param        id   path      string  true  "Technician ID (UUID)"
// @Success      200  {object}  technicianResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /technicians/{id} [get]
func (h *TechnicianHandler) Get(c echo.Context) error {
	id, err := technicianID(c)
	if err != nil {
		return err
	}
	technician, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTechnicianResponse(technician))
}

// Update handles PUT /technicians/:id.
//
// @Summary      Replace a technician
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Technician ID (UUID)"
// @Param        body  body      updateTechnicianRequest  true  "Technician details"
// @Success      200   {object}  technicianResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /technicians/{id} [put]
func (h *TechnicianHandler) Update(c echo.Context) error {
	id, err := technicianID(c)
	if err != nil {
		return err
	}

	var req updateTechnicianRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	technician, err := h.service.Update(c.Request().Context(), id, ports.UpdateTechnicianInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Skills:    req.Skills,
		IsActive:  req.IsActive,
		ActorID:   actorID(c),
	})
	if err != nil {
		countConflict(err)
		return err
	}
	return c.JSON(http.StatusOK, toTechnicianResponse(technician))
}

// Patch handles PATCH /technicians/:id. The payload is decoded as a raw JSON
// object so that provided-but-empty and absent fields can be told apart; key
// whitelisting happens in the service.
//
// @Summary      Partially update a technician
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Technician ID (UUID)"
// @Param        body  body      map[string]any  true  "Fields to update"
// @Success      200   {object}  technicianResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /technicians/{id} [patch]
func (h *TechnicianHandler) Patch(c echo.Context) error {
	id, err := technicianID(c)
	if err != nil {
		return err
	}

	// An empty body means "no fields": let the service reject it with its
	// own validation error instead of a decoder-level 400.
	fields := map[string]any{}
	if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil && !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	technician, err := h.service.Patch(c.Request().Context(), id, ports.PatchTechnicianInput{
		Fields:  fields,
		ActorID: actorID(c),
	})
	if err != nil {
		countConflict(err)
		return err
	}
	return c.JSON(http.StatusOK, toTechnicianResponse(technician))
}

// Delete handles DELETE /technicians/:id.
//
// @Summary      Delete a technician
// @Tags         technicians
// @Param        id  path  string  true  "Technician ID (UUID)"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /technicians/{id} [delete]
func (h *TechnicianHandler) Delete(c echo.Context) error {
	id, err := technicianID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func technicianID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id must be a valid UUID", "id")
	}
	return id, nil
}

func parseListFilter(c echo.Context) (ports.ListTechniciansFilter, error) {
	filter := ports.ListTechniciansFilter{
		Query:     strings.TrimSpace(c.QueryParam("q")),
		FirstName: strings.TrimSpace(c.QueryParam("first_name")),
		LastName:  strings.TrimSpace(c.QueryParam("last_name")),
		Email:     strings.TrimSpace(c.QueryParam("email")),
		Skill:     strings.TrimSpace(c.QueryParam("skill")),
		Page:      1,
		PageSize:  25,
	}

	if raw := c.QueryParam("is_active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, domain.NewValidationError("is_active must be a boolean", "is_active")
		}
		filter.IsActive = &v
	}
	var err error
	if filter.MinRate, err = parseRate(c, "min_rate"); err != nil {
		return filter, err
	}
	if filter.MaxRate, err = parseRate(c, "max_rate"); err != nil {
		return filter, err
	}

	if raw := c.QueryParam("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return filter, domain.NewValidationError("page must be a positive integer", "page")
		}
		filter.Page = v
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return filter, domain.NewValidationError("page_size must be a positive integer", "page_size")
		}
		filter.PageSize = v
	}

	// Sort keys may be repeated (?sort=a&sort=b) or comma-separated.
	for _, raw := range c.QueryParams()["sort"] {
		for _, key := range strings.Split(raw, ",") {
			if key = strings.TrimSpace(key); key != "" {
				filter.Sort = append(filter.Sort, key)
			}
		}
	}

	return filter, nil
}

func parseRate(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.NewValidationError(name+" must be a number", name)
	}
	return &v, nil
}

// countConflict feeds the uniqueness-conflict counter without altering the
// error flow; the central handler still maps the error to a status code.
func countConflict(err error) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		metrics.ConflictsTotal.WithLabelValues("email").Inc()
	case errors.Is(err, domain.ErrPhoneTaken):
		metrics.ConflictsTotal.WithLabelValues("phone").Inc()
	case errors.Is(err, domain.ErrDuplicate):
		metrics.ConflictsTotal.WithLabelValues("other").Inc()
	}
}
