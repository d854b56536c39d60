package catalog

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

type SlotFilter struct {
	ServiceID     *uint
	AvailableOnly bool
	// From hides slots starting before it when set.
	From *time.Time
}

type Dependents struct {
	TimeSlots    int64
	Reservations int64
}

func (d Dependents) Any() bool {
	return d.TimeSlots > 0 || d.Reservations > 0
}

type Repository interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error

	// -------- Service --------
	CreateService(ctx context.Context, s *models.Service) error
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetServiceForUpdate(ctx context.Context, id uint) (*models.Service, error)
	UpdateService(ctx context.Context, s *models.Service) error
	ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error)
	CountServices(ctx context.Context) (int64, error)
	DeleteService(ctx context.Context, id uint) error

	// -------- Dependents --------
	CountDependents(ctx context.Context, serviceID uint) (Dependents, error)
	DeleteReservationsByService(ctx context.Context, serviceID uint) (int64, error)
	DeleteTimeSlotsByService(ctx context.Context, serviceID uint) (int64, error)

	// -------- TimeSlot --------
	// CreateTimeSlot returns ErrTimeSlotExists for a duplicate
	// (service, start) pair.
	CreateTimeSlot(ctx context.Context, slot *models.TimeSlot) error
	ListTimeSlots(ctx context.Context, filter SlotFilter) ([]models.TimeSlot, error)

	// -------- Audit --------
	RecordAudit(ctx context.Context, ev audit.Event) error
}

// Cache holds the public list of active services.
type Cache interface {
	GetActiveServices(ctx context.Context) ([]models.Service, bool)
	SetActiveServices(ctx context.Context, services []models.Service)
	Invalidate(ctx context.Context)
}

// ImageStore persists encoded images and returns their public URL.
type ImageStore interface {
	Enabled() bool
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}
