package catalog

import (
	"strings"

	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
	"github.com/BruksfildServices01/barbershop-reservation/internal/validators"
)

const DefaultDurationMinutes = 30

// ServiceInput carries the editable fields of a service.
type ServiceInput struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Description     string  `json:"description" validate:"max=500"`
	Price           float64 `json:"price" validate:"gt=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"min=5,max=480"`
	IsActive        *bool   `json:"is_active"`
}

// Normalize trims text fields and fills the default duration.
func (in *ServiceInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.DurationMinutes == 0 {
		in.DurationMinutes = DefaultDurationMinutes
	}
}

func (in ServiceInput) Validate() error {
	return validators.Struct(in)
}

// Apply copies the input onto s. A nil IsActive keeps the current flag.
func (in ServiceInput) Apply(s *models.Service) {
	s.Name = in.Name
	s.Description = in.Description
	s.Price = in.Price
	s.DurationMinutes = in.DurationMinutes
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
}
