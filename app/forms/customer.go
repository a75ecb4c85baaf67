package forms

import (
	"strings"

	"github.com/shashiranjanraj/backoffice/app/models"
)

// CustomerStatusUpdate is the payload of PATCH /api/customers/{id}/status.
type CustomerStatusUpdate struct {
	Status string `json:"status" validate:"required,in=active,inactive"`
}

// Parse returns the typed status or a field error map.
func (f CustomerStatusUpdate) Parse() (models.CustomerStatus, map[string]string) {
	status := models.CustomerStatus(strings.TrimSpace(f.Status))
	if status != models.CustomerActive && status != models.CustomerInactive {
		return "", map[string]string{"status": "The selected status is invalid."}
	}
	return status, nil
}
