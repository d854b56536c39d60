package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateTimeSlot struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewCreateTimeSlot(repo domain.Repository, log *zap.Logger) *CreateTimeSlot {
	return &CreateTimeSlot{repo: repo, log: log}
}

func (uc *CreateTimeSlot) Execute(
	ctx context.Context,
	actor auth.Actor,
	serviceID uint,
	start time.Time,
) (*models.TimeSlot, error) {

	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	if start.IsZero() {
		return nil, httperr.ErrValidation("start_time", "is required")
	}

	var slot *models.TimeSlot

	err := uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		service, err := tx.GetService(ctx, serviceID)
		if err != nil {
			return err
		}

		slot = domain.NewTimeSlot(service, start)
		if err := tx.CreateTimeSlot(ctx, slot); err != nil {
			return err
		}

		return tx.RecordAudit(ctx, audit.Event{
			UserID:   audit.Ptr(actor.UserID),
			Action:   audit.ActionTimeSlotCreated,
			Entity:   audit.EntityTimeSlot,
			EntityID: audit.Ptr(slot.ID),
			Metadata: map[string]any{
				"service_id": serviceID,
				"start_time": slot.StartTime,
			},
		})
	})
	if err != nil {
		return nil, logFailure(uc.log, "create_time_slot", err)
	}

	return slot, nil
}

// ======================================================
// LIST (ADMIN)
// ======================================================

type ListTimeSlots struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewListTimeSlots(repo domain.Repository, log *zap.Logger) *ListTimeSlots {
	return &ListTimeSlots{repo: repo, log: log}
}

func (uc *ListTimeSlots) Execute(
	ctx context.Context,
	actor auth.Actor,
	serviceID *uint,
	availableOnly bool,
) ([]models.TimeSlot, error) {

	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	slots, err := uc.repo.ListTimeSlots(ctx, domain.SlotFilter{
		ServiceID:     serviceID,
		AvailableOnly: availableOnly,
	})
	return slots, logFailure(uc.log, "list_time_slots", err)
}

// ======================================================
// AVAILABLE (BOOKING FORM)
// ======================================================

type BookingOptions struct {
	Service *models.Service   `json:"service"`
	Slots   []models.TimeSlot `json:"slots"`
}

// ListAvailableSlots returns an active service with its future free slots.
type ListAvailableSlots struct {
	repo domain.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewListAvailableSlots(repo domain.Repository, log *zap.Logger) *ListAvailableSlots {
	return &ListAvailableSlots{
		repo: repo,
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (uc *ListAvailableSlots) Execute(
	ctx context.Context,
	actor auth.Actor,
	serviceID uint,
) (*BookingOptions, error) {

	if actor.UserID == 0 {
		return nil, auth.ErrUnauthenticated
	}

	service, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, logFailure(uc.log, "list_available_slots", err)
	}
	if !service.IsActive {
		return nil, httperr.ErrNotFound("service")
	}

	from := uc.now()
	slots, err := uc.repo.ListTimeSlots(ctx, domain.SlotFilter{
		ServiceID:     &service.ID,
		AvailableOnly: true,
		From:          &from,
	})
	if err != nil {
		return nil, logFailure(uc.log, "list_available_slots", err)
	}

	return &BookingOptions{Service: service, Slots: slots}, nil
}
