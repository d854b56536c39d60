package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) WithTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CatalogGormRepository{db: tx})
	})
	return passthrough("catalog_tx", err)
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return httperr.ErrPersistence("create_service", err)
	}
	return nil
}

func (r *CatalogGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, wrap("get_service", "service", err)
	}
	return &service, nil
}

// GetServiceForUpdate locks the service row until the transaction ends.
func (r *CatalogGormRepository) GetServiceForUpdate(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&service, id).Error; err != nil {
		return nil, wrap("get_service_for_update", "service", err)
	}
	return &service, nil
}

func (r *CatalogGormRepository) UpdateService(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return httperr.ErrPersistence("update_service", err)
	}
	return nil
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	activeOnly bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Model(&models.Service{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, httperr.ErrPersistence("list_services", err)
	}
	return services, nil
}

func (r *CatalogGormRepository) CountServices(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Service{}).Count(&count).Error; err != nil {
		return 0, httperr.ErrPersistence("count_services", err)
	}
	return count, nil
}

func (r *CatalogGormRepository) DeleteService(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return httperr.ErrPersistence("delete_service", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("service")
	}
	return nil
}

// --------------------------------------------------
// Dependents
// --------------------------------------------------

func (r *CatalogGormRepository) CountDependents(
	ctx context.Context,
	serviceID uint,
) (domain.Dependents, error) {

	var deps domain.Dependents

	if err := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("service_id = ?", serviceID).
		Count(&deps.TimeSlots).Error; err != nil {
		return deps, httperr.ErrPersistence("count_time_slots", err)
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("service_id = ?", serviceID).
		Count(&deps.Reservations).Error; err != nil {
		return deps, httperr.ErrPersistence("count_reservations", err)
	}

	return deps, nil
}

func (r *CatalogGormRepository) DeleteReservationsByService(
	ctx context.Context,
	serviceID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Delete(&models.Reservation{})
	if res.Error != nil {
		return 0, httperr.ErrPersistence("delete_reservations", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *CatalogGormRepository) DeleteTimeSlotsByService(
	ctx context.Context,
	serviceID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Delete(&models.TimeSlot{})
	if res.Error != nil {
		return 0, httperr.ErrPersistence("delete_time_slots", res.Error)
	}
	return res.RowsAffected, nil
}

// --------------------------------------------------
// TimeSlot
// --------------------------------------------------

func (r *CatalogGormRepository) CreateTimeSlot(ctx context.Context, slot *models.TimeSlot) error {
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrTimeSlotExists
		}
		if isForeignKeyViolation(err) {
			return httperr.ErrNotFound("service")
		}
		return httperr.ErrPersistence("create_time_slot", err)
	}
	return nil
}

func (r *CatalogGormRepository) ListTimeSlots(
	ctx context.Context,
	filter domain.SlotFilter,
) ([]models.TimeSlot, error) {

	q := r.db.WithContext(ctx).Model(&models.TimeSlot{})

	if filter.ServiceID != nil {
		q = q.Where("service_id = ?", *filter.ServiceID)
	}
	if filter.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}
	if filter.From != nil {
		q = q.Where("start_time > ?", filter.From.UTC())
	}

	var slots []models.TimeSlot
	if err := q.
		Order("start_time ASC").
		Order("service_id ASC").
		Find(&slots).Error; err != nil {
		return nil, httperr.ErrPersistence("list_time_slots", err)
	}
	return slots, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *CatalogGormRepository) RecordAudit(ctx context.Context, ev audit.Event) error {
	if err := audit.New(r.db).Log(ctx, ev); err != nil {
		return httperr.ErrPersistence("record_audit", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)
