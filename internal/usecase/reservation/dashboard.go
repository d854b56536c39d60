package reservation

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/dto"
)

const dashboardRecent = 5

type Dashboard struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewDashboard(repo domain.Repository, log *zap.Logger) *Dashboard {
	return &Dashboard{repo: repo, log: log}
}

func (uc *Dashboard) Execute(ctx context.Context, actor auth.Actor) (*dto.DashboardDTO, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	services, err := uc.repo.CountServices(ctx)
	if err != nil {
		return nil, logFailure(uc.log, "dashboard", err)
	}

	counts, err := uc.repo.CountReservations(ctx)
	if err != nil {
		return nil, logFailure(uc.log, "dashboard", err)
	}

	recent, err := uc.repo.ListReservationDetails(ctx, domain.ListFilter{Limit: dashboardRecent})
	if err != nil {
		return nil, logFailure(uc.log, "dashboard", err)
	}

	return &dto.DashboardDTO{
		TotalServices:        services,
		TotalReservations:    counts.Total,
		PendingReservations:  counts.Pending,
		ApprovedReservations: counts.Approved,
		Recent:               recent,
	}, nil
}
