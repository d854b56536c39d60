package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ReserveInput struct {
	TimeSlotID uint
	UserID     uint
	ServiceID  uint
	Notes      string
}

// ======================================================
// SLOT ALLOCATOR
// ======================================================

// SlotAllocator owns the availability flag of time slots. A slot is
// claimed and its reservation inserted in the same transaction, so two
// callers racing for one slot cannot both succeed.
type SlotAllocator struct {
	repo domain.Repository
	log  *zap.Logger
	now  clock
}

func NewSlotAllocator(repo domain.Repository, log *zap.Logger) *SlotAllocator {
	return &SlotAllocator{
		repo: repo,
		log:  log,
		now:  utcNow,
	}
}

func (a *SlotAllocator) Reserve(
	ctx context.Context,
	in ReserveInput,
) (*models.Reservation, error) {

	if in.UserID == 0 {
		return nil, auth.ErrUnauthenticated
	}

	if err := domain.ValidateNotes(in.Notes); err != nil {
		return nil, err
	}

	var created *models.Reservation

	err := a.repo.WithTx(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 1. Service must exist and be bookable
		// --------------------------------------------------
		service, err := tx.GetService(ctx, in.ServiceID)
		if err != nil {
			return err
		}
		if !service.IsActive {
			return httperr.ErrNotFound("service")
		}

		// --------------------------------------------------
		// 2. Claim the slot (row lock on the conditional update)
		// --------------------------------------------------
		now := a.now()
		if err := tx.ClaimSlot(ctx, in.TimeSlotID, in.ServiceID, now); err != nil {
			return err
		}

		// --------------------------------------------------
		// 3. Reservation
		// --------------------------------------------------
		res := &models.Reservation{
			Code:       uuid.NewString(),
			ServiceID:  in.ServiceID,
			UserID:     in.UserID,
			TimeSlotID: in.TimeSlotID,
			Status:     string(domain.InitialStatus()),
			Notes:      in.Notes,
		}
		if err := tx.CreateReservation(ctx, res); err != nil {
			return err
		}

		// --------------------------------------------------
		// 4. Audit
		// --------------------------------------------------
		if err := tx.RecordAudit(ctx, audit.Event{
			UserID:   audit.Ptr(in.UserID),
			Action:   audit.ActionReservationCreated,
			Entity:   audit.EntityReservation,
			EntityID: audit.Ptr(res.ID),
			Metadata: map[string]any{
				"code":         res.Code,
				"service_id":   res.ServiceID,
				"time_slot_id": res.TimeSlotID,
			},
		}); err != nil {
			return err
		}

		created = res
		return nil
	})
	if err != nil {
		return nil, logFailure(a.log, "reserve", err)
	}

	a.log.Info("reservation created",
		zap.Uint("reservation_id", created.ID),
		zap.Uint("time_slot_id", created.TimeSlotID),
		zap.Uint("user_id", created.UserID),
	)

	return created, nil
}

// Release marks the slot available again. It is idempotent.
func (a *SlotAllocator) Release(ctx context.Context, slotID uint) error {
	err := a.repo.WithTx(ctx, func(tx domain.Repository) error {
		return tx.ReleaseSlot(ctx, slotID)
	})
	return logFailure(a.log, "release", err)
}

// SetClock replaces the time source used to reject slots in the past.
func (a *SlotAllocator) SetClock(now func() time.Time) {
	a.now = now
}
