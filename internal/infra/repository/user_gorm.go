package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/account"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrEmailTaken
		}
		return httperr.ErrPersistence("create_user", err)
	}
	return nil
}

func (r *UserGormRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, wrap("find_user", "user", err)
	}
	return &user, nil
}

func (r *UserGormRepository) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, wrap("find_user", "user", err)
	}
	return &user, nil
}

func (r *UserGormRepository) RecordAudit(ctx context.Context, ev audit.Event) error {
	if err := audit.New(r.db).Log(ctx, ev); err != nil {
		return httperr.ErrPersistence("record_audit", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
