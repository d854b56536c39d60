package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/dto"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

type ListFilter struct {
	UserID    *uint
	ServiceID *uint
	Status    *Status
	Limit     int
}

type StatusCounts struct {
	Total    int64
	Pending  int64
	Approved int64
}

type Repository interface {
	// -------- Transactions --------
	// WithTx runs fn against a repository bound to a single transaction.
	WithTx(ctx context.Context, fn func(tx Repository) error) error

	// -------- Service --------
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CountServices(ctx context.Context) (int64, error)

	// -------- Slot allocation --------
	// ClaimSlot flips a slot of serviceID from available to unavailable,
	// provided it starts after notBefore. It returns ErrSlotUnavailable
	// when no row qualifies.
	ClaimSlot(ctx context.Context, slotID, serviceID uint, notBefore time.Time) error

	// ReleaseSlot marks the slot available again. Releasing an available
	// slot is a no-op.
	ReleaseSlot(ctx context.Context, slotID uint) error

	// -------- Reservation --------
	CreateReservation(ctx context.Context, r *models.Reservation) error

	// GetReservationForUpdate locks the row for the rest of the transaction.
	GetReservationForUpdate(ctx context.Context, id uint) (*models.Reservation, error)

	UpdateReservation(ctx context.Context, r *models.Reservation) error

	GetReservationDetails(ctx context.Context, id uint) (*dto.ReservationListDTO, error)
	ListReservationDetails(ctx context.Context, filter ListFilter) ([]dto.ReservationListDTO, error)
	CountReservations(ctx context.Context) (StatusCounts, error)

	// -------- Audit --------
	RecordAudit(ctx context.Context, ev audit.Event) error
}
