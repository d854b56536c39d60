package reservation

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/dto"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// MockRepository runs WithTx callbacks against itself.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) WithTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	return fn(m)
}

func (m *MockRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockRepository) CountServices(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ClaimSlot(ctx context.Context, slotID, serviceID uint, notBefore time.Time) error {
	args := m.Called(ctx, slotID, serviceID, notBefore)
	return args.Error(0)
}

func (m *MockRepository) ReleaseSlot(ctx context.Context, slotID uint) error {
	args := m.Called(ctx, slotID)
	return args.Error(0)
}

func (m *MockRepository) CreateReservation(ctx context.Context, r *models.Reservation) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil {
		r.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) GetReservationForUpdate(ctx context.Context, id uint) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockRepository) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) GetReservationDetails(ctx context.Context, id uint) (*dto.ReservationListDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReservationListDTO), args.Error(1)
}

func (m *MockRepository) ListReservationDetails(ctx context.Context, filter domain.ListFilter) ([]dto.ReservationListDTO, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReservationListDTO), args.Error(1)
}

func (m *MockRepository) CountReservations(ctx context.Context) (domain.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StatusCounts), args.Error(1)
}

func (m *MockRepository) RecordAudit(ctx context.Context, ev audit.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

var _ domain.Repository = (*MockRepository)(nil)
