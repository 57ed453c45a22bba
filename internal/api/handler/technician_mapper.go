package handler

import (
	"github.com/zynor/field-service-api/internal/core/domain"
	"github.com/zynor/field-service-api/internal/core/ports"
)

func toTechnicianResponse(t *domain.Technician) technicianResponse {
	skills := t.Skills
	if skills == nil {
		skills = []string{}
	}
	return technicianResponse{
		ID:         t.ID,
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		Email:      t.Email,
		Phone:      t.Phone,
		Skills:     skills,
		HourlyRate: t.HourlyRate,
		IsActive:   t.IsActive,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func toListTechniciansResponse(result *ports.ListTechniciansResult) listTechniciansResponse {
	items := make([]technicianResponse, len(result.Items))
	for i, t := range result.Items {
		items[i] = toTechnicianResponse(t)
	}
	return listTechniciansResponse{
		Items:    items,
		Page:     result.Page,
		PageSize: result.PageSize,
		Total:    result.Total,
	}
}
