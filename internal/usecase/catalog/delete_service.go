package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-reservation/internal/dto"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
)

// DeleteService removes a service. Dependent time slots and reservations
// are only removed when the caller asks for a cascade; otherwise their
// presence fails the call.
type DeleteService struct {
	repo  domain.Repository
	cache domain.Cache
	log   *zap.Logger
}

func NewDeleteService(repo domain.Repository, cache domain.Cache, log *zap.Logger) *DeleteService {
	return &DeleteService{repo: repo, cache: cacheOrNoop(cache), log: log}
}

func (uc *DeleteService) Execute(
	ctx context.Context,
	actor auth.Actor,
	serviceID uint,
	cascade bool,
) (*dto.DeleteServiceResultDTO, error) {

	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	result := &dto.DeleteServiceResultDTO{ServiceID: serviceID}

	err := uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		// the lock keeps new slots from landing between the count and the delete
		if _, err := tx.GetServiceForUpdate(ctx, serviceID); err != nil {
			return err
		}

		deps, err := tx.CountDependents(ctx, serviceID)
		if err != nil {
			return err
		}

		if deps.Any() {
			if !cascade {
				return httperr.ErrServiceHasDependents
			}

			// reservations reference slots, so they go first
			if result.DeletedReservations, err = tx.DeleteReservationsByService(ctx, serviceID); err != nil {
				return err
			}
			if result.DeletedTimeSlots, err = tx.DeleteTimeSlotsByService(ctx, serviceID); err != nil {
				return err
			}
		}

		if err := tx.DeleteService(ctx, serviceID); err != nil {
			return err
		}

		return tx.RecordAudit(ctx, audit.Event{
			UserID:   audit.Ptr(actor.UserID),
			Action:   audit.ActionServiceDeleted,
			Entity:   audit.EntityService,
			EntityID: audit.Ptr(serviceID),
			Metadata: map[string]any{
				"cascade":              cascade,
				"deleted_time_slots":   result.DeletedTimeSlots,
				"deleted_reservations": result.DeletedReservations,
			},
		})
	})
	if err != nil {
		return nil, logFailure(uc.log, "delete_service", err)
	}

	uc.cache.Invalidate(ctx)

	uc.log.Info("service deleted",
		zap.Uint("service_id", serviceID),
		zap.Bool("cascade", cascade),
		zap.Int64("deleted_time_slots", result.DeletedTimeSlots),
		zap.Int64("deleted_reservations", result.DeletedReservations),
	)

	return result, nil
}
