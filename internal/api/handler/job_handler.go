package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/zynor/field-service-api/internal/core/domain"
	"github.com/zynor/field-service-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

type createJobRequest struct {
	Title            string     `json:"title" validate:"required,max=200"`
	Description      string     `json:"description"`
	Status           string     `json:"status" validate:"omitempty,max=50"`
	ScheduledStartAt *time.Time `json:"scheduled_start_at"`
	ScheduledEndAt   *time.Time `json:"scheduled_end_at"`
	CustomerID       uint       `json:"customer_id" validate:"required"`
	TechnicianID     *uuid.UUID `json:"technician_id"`
}

type updateJobRequest struct {
	Title            *string    `json:"title" validate:"omitempty,max=200"`
	Description      *string    `json:"description"`
	Status           *string    `json:"status" validate:"omitempty,max=50"`
	ScheduledStartAt *time.Time `json:"scheduled_start_at"`
	ScheduledEndAt   *time.Time `json:"scheduled_end_at"`
	CustomerID       *uint      `json:"customer_id"`
	TechnicianID     *uuid.UUID `json:"technician_id"`
}

type jobResponse struct {
	ID               uint       `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Status           string     `json:"status"`
	ScheduledStartAt *time.Time `json:"scheduled_start_at,omitempty"`
	ScheduledEndAt   *time.Time `json:"scheduled_end_at,omitempty"`
	CustomerID       uint       `json:"customer_id"`
	TechnicianID     *uuid.UUID `json:"technician_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:               j.ID,
		Title:            j.Title,
		Description:      j.Description,
		Status:           j.Status,
		ScheduledStartAt: j.ScheduledStartAt,
		ScheduledEndAt:   j.ScheduledEndAt,
		CustomerID:       j.CustomerID,
		TechnicianID:     j.TechnicianID,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

// Create handles POST /jobs.
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.service.Create(c.Request().Context(), ports.CreateJobInput{
		Title:            req.Title,
		Description:      req.Description,
		Status:           req.Status,
		ScheduledStartAt: req.ScheduledStartAt,
		ScheduledEndAt:   req.ScheduledEndAt,
		CustomerID:       req.CustomerID,
		TechnicianID:     req.TechnicianID,
		ActorID:          actorID(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// List handles GET /jobs.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {array}  jobResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		resp[i] = toJobResponse(j)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /jobs/:id.
//
// @Summary      Get a job by ID
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := numericID(c, "job")
	if err != nil {
		return err
	}
	job, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Update handles PUT /jobs/:id with partial-merge semantics.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Fields to update"
// @Success      200   {object}  jobResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := numericID(c, "job")
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.service.Update(c.Request().Context(), id, ports.UpdateJobInput{
		Title:            req.Title,
		Description:      req.Description,
		Status:           req.Status,
		ScheduledStartAt: req.ScheduledStartAt,
		ScheduledEndAt:   req.ScheduledEndAt,
		CustomerID:       req.CustomerID,
		TechnicianID:     req.TechnicianID,
		ActorID:          actorID(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Delete handles DELETE /jobs/:id.
//
// @Summary      Delete a job
// @Tags         jobs
// @Param        id  path  int  true  "Job ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := numericID(c, "job")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
