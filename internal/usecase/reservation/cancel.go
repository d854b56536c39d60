package reservation

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

type CancelReservation struct {
	transition
}

func NewCancelReservation(repo domain.Repository, log *zap.Logger) *CancelReservation {
	return &CancelReservation{transition: newTransition(repo, log)}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	actor auth.Actor,
	reservationID uint,
) (*models.Reservation, error) {

	return uc.run(ctx, actor, reservationID, transitionRule{
		op:        "cancel",
		action:    audit.ActionReservationCancelled,
		authorize: ownerOrAdmin,
		mutate:    domain.Cancel,
		release:   true,
	})
}
