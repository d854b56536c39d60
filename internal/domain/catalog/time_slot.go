package catalog

import (
	"time"

	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// NewTimeSlot builds an available slot for service starting at start.
// Times are stored in UTC.
func NewTimeSlot(service *models.Service, start time.Time) *models.TimeSlot {
	start = start.UTC()
	return &models.TimeSlot{
		ServiceID:   service.ID,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(service.DurationMinutes) * time.Minute),
		IsAvailable: true,
	}
}
