package reservation

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// CompleteReservation closes an approved visit and frees its slot.
type CompleteReservation struct {
	transition
}

func NewCompleteReservation(repo domain.Repository, log *zap.Logger) *CompleteReservation {
	return &CompleteReservation{transition: newTransition(repo, log)}
}

func (uc *CompleteReservation) Execute(
	ctx context.Context,
	actor auth.Actor,
	reservationID uint,
) (*models.Reservation, error) {

	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	return uc.run(ctx, actor, reservationID, transitionRule{
		op:      "complete",
		action:  audit.ActionReservationCompleted,
		mutate:  domain.Complete,
		release: true,
	})
}
