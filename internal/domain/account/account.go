package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
	"github.com/BruksfildServices01/barbershop-reservation/internal/validators"
)

type RegisterInput struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
}

func (in *RegisterInput) Normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = NormalizeEmail(in.Email)
}

func (in RegisterInput) Validate() error {
	return validators.Struct(in)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Repository interface {
	// CreateUser returns ErrEmailTaken when the address is registered.
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	RecordAudit(ctx context.Context, ev audit.Event) error
}
