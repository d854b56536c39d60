package reservation

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/dto"
)

type GetReservation struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewGetReservation(repo domain.Repository, log *zap.Logger) *GetReservation {
	return &GetReservation{repo: repo, log: log}
}

func (uc *GetReservation) Execute(
	ctx context.Context,
	actor auth.Actor,
	reservationID uint,
) (*dto.ReservationListDTO, error) {

	res, err := uc.repo.GetReservationDetails(ctx, reservationID)
	if err != nil {
		return nil, logFailure(uc.log, "get", err)
	}

	if err := actor.RequireOwnerOrAdmin(res.UserID); err != nil {
		return nil, err
	}

	return res, nil
}
