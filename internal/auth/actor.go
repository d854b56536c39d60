package auth

import (
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// RequireAdmin is the capability check for administrator operations.
func (a Actor) RequireAdmin() error {
	if !a.IsAdmin() {
		return httperr.ErrForbidden
	}
	return nil
}

// RequireOwnerOrAdmin is the capability check for operations on a
// reservation owned by ownerID.
func (a Actor) RequireOwnerOrAdmin(ownerID uint) error {
	if a.IsAdmin() || (a.UserID != 0 && a.UserID == ownerID) {
		return nil
	}
	return httperr.ErrForbidden
}

var ErrUnauthenticated = httperr.ErrBusiness(httperr.CodeUnauthenticated)
