package reservation

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// RejectReservation is the administrator's cancellation. The slot is
// released in the same transaction.
type RejectReservation struct {
	transition
}

func NewRejectReservation(repo domain.Repository, log *zap.Logger) *RejectReservation {
	return &RejectReservation{transition: newTransition(repo, log)}
}

func (uc *RejectReservation) Execute(
	ctx context.Context,
	actor auth.Actor,
	reservationID uint,
) (*models.Reservation, error) {

	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	return uc.run(ctx, actor, reservationID, transitionRule{
		op:      "reject",
		action:  audit.ActionReservationRejected,
		mutate:  domain.Cancel,
		release: true,
	})
}
