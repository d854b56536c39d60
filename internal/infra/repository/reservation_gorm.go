package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/dto"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *ReservationGormRepository) WithTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReservationGormRepository{db: tx})
	})
	return passthrough("reservation_tx", err)
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ReservationGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, wrap("get_service", "service", err)
	}
	return &service, nil
}

func (r *ReservationGormRepository) CountServices(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Count(&count).Error; err != nil {
		return 0, httperr.ErrPersistence("count_services", err)
	}
	return count, nil
}

// --------------------------------------------------
// Slot allocation
// --------------------------------------------------

func (r *ReservationGormRepository) ClaimSlot(
	ctx context.Context,
	slotID uint,
	serviceID uint,
	notBefore time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where(
			"id = ? AND service_id = ? AND is_available = ? AND start_time > ?",
			slotID, serviceID, true, notBefore.UTC(),
		).
		Update("is_available", false)

	if res.Error != nil {
		return httperr.ErrPersistence("claim_slot", res.Error)
	}
	if res.RowsAffected != 1 {
		return httperr.ErrSlotUnavailable
	}
	return nil
}

func (r *ReservationGormRepository) ReleaseSlot(
	ctx context.Context,
	slotID uint,
) error {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).
		Select("id").
		First(&slot, slotID).Error; err != nil {
		return wrap("release_slot", "time_slot", err)
	}

	if err := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ?", slotID).
		Update("is_available", true).Error; err != nil {
		return httperr.ErrPersistence("release_slot", err)
	}
	return nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrSlotUnavailable
		}
		// service and slot are already checked in the transaction
		if isForeignKeyViolation(err) {
			return httperr.ErrNotFound("user")
		}
		return httperr.ErrPersistence("create_reservation", err)
	}
	return nil
}

func (r *ReservationGormRepository) GetReservationForUpdate(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&res, id).Error; err != nil {
		return nil, wrap("get_reservation", "reservation", err)
	}
	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	if err := r.db.WithContext(ctx).Save(res).Error; err != nil {
		return httperr.ErrPersistence("update_reservation", err)
	}
	return nil
}

// --------------------------------------------------
// Read models
// --------------------------------------------------

const reservationDetailColumns = `
	reservations.id,
	reservations.code,
	reservations.status,
	reservations.notes,
	reservations.service_id,
	services.name AS service_name,
	services.price,
	reservations.time_slot_id,
	time_slots.start_time,
	time_slots.end_time,
	reservations.user_id,
	users.first_name,
	users.last_name,
	users.email AS user_email,
	reservations.created_at`

type reservationDetailRow struct {
	dto.ReservationListDTO
	FirstName string
	LastName  string
}

func (r *ReservationGormRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("reservations").
		Select(reservationDetailColumns).
		Joins("JOIN services ON services.id = reservations.service_id").
		Joins("JOIN time_slots ON time_slots.id = reservations.time_slot_id").
		Joins("JOIN users ON users.id = reservations.user_id")
}

func (r *ReservationGormRepository) GetReservationDetails(
	ctx context.Context,
	id uint,
) (*dto.ReservationListDTO, error) {

	var rows []reservationDetailRow
	if err := r.detailsQuery(ctx).
		Where("reservations.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, httperr.ErrPersistence("get_reservation_details", err)
	}
	if len(rows) == 0 {
		return nil, httperr.ErrNotFound("reservation")
	}

	out := rows[0].toDTO()
	return &out, nil
}

func (r *ReservationGormRepository) ListReservationDetails(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.ReservationListDTO, error) {

	q := r.detailsQuery(ctx)

	if filter.UserID != nil {
		q = q.Where("reservations.user_id = ?", *filter.UserID)
	}
	if filter.ServiceID != nil {
		q = q.Where("reservations.service_id = ?", *filter.ServiceID)
	}
	if filter.Status != nil {
		q = q.Where("reservations.status = ?", string(*filter.Status))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []reservationDetailRow
	if err := q.
		Order("reservations.created_at DESC").
		Order("reservations.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, httperr.ErrPersistence("list_reservations", err)
	}

	out := make([]dto.ReservationListDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDTO())
	}
	return out, nil
}

func (row reservationDetailRow) toDTO() dto.ReservationListDTO {
	d := row.ReservationListDTO
	d.UserName = models.User{FirstName: row.FirstName, LastName: row.LastName}.FullName()
	return d
}

func (r *ReservationGormRepository) CountReservations(
	ctx context.Context,
) (domain.StatusCounts, error) {

	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return domain.StatusCounts{}, httperr.ErrPersistence("count_reservations", err)
	}

	var counts domain.StatusCounts
	for _, row := range rows {
		counts.Total += row.Count
		switch domain.Status(row.Status) {
		case domain.StatusPending:
			counts.Pending = row.Count
		case domain.StatusApproved:
			counts.Approved = row.Count
		}
	}
	return counts, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *ReservationGormRepository) RecordAudit(ctx context.Context, ev audit.Event) error {
	if err := audit.New(r.db).Log(ctx, ev); err != nil {
		return httperr.ErrPersistence("record_audit", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
