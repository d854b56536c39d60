package reservation

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/dto"
)

// ======================================================
// MINE
// ======================================================

type ListMyReservations struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewListMyReservations(repo domain.Repository, log *zap.Logger) *ListMyReservations {
	return &ListMyReservations{repo: repo, log: log}
}

func (uc *ListMyReservations) Execute(
	ctx context.Context,
	actor auth.Actor,
	serviceID *uint,
) ([]dto.ReservationListDTO, error) {

	if actor.UserID == 0 {
		return nil, auth.ErrUnauthenticated
	}

	userID := actor.UserID
	out, err := uc.repo.ListReservationDetails(ctx, domain.ListFilter{
		UserID:    &userID,
		ServiceID: serviceID,
	})
	return out, logFailure(uc.log, "list_mine", err)
}

// ======================================================
// ALL (ADMIN)
// ======================================================

type ListAllReservations struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewListAllReservations(repo domain.Repository, log *zap.Logger) *ListAllReservations {
	return &ListAllReservations{repo: repo, log: log}
}

func (uc *ListAllReservations) Execute(
	ctx context.Context,
	actor auth.Actor,
	status *domain.Status,
) ([]dto.ReservationListDTO, error) {

	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	out, err := uc.repo.ListReservationDetails(ctx, domain.ListFilter{Status: status})
	return out, logFailure(uc.log, "list_all", err)
}
