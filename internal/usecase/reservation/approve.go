package reservation

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

type ApproveReservation struct {
	transition
}

func NewApproveReservation(repo domain.Repository, log *zap.Logger) *ApproveReservation {
	return &ApproveReservation{transition: newTransition(repo, log)}
}

func (uc *ApproveReservation) Execute(
	ctx context.Context,
	actor auth.Actor,
	reservationID uint,
) (*models.Reservation, error) {

	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	return uc.run(ctx, actor, reservationID, transitionRule{
		op:     "approve",
		action: audit.ActionReservationApproved,
		mutate: domain.Approve,
	})
}
