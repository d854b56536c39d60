package reservation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// EditReservation changes the notes of a reservation. Status and slot are
// never touched here.
type EditReservation struct {
	transition
}

func NewEditReservation(repo domain.Repository, log *zap.Logger) *EditReservation {
	return &EditReservation{transition: newTransition(repo, log)}
}

func (uc *EditReservation) Execute(
	ctx context.Context,
	actor auth.Actor,
	reservationID uint,
	notes string,
) (*models.Reservation, error) {

	if err := domain.ValidateNotes(notes); err != nil {
		return nil, err
	}

	return uc.run(ctx, actor, reservationID, transitionRule{
		op:        "edit",
		action:    audit.ActionReservationEdited,
		authorize: ownerOrAdmin,
		mutate: func(r *models.Reservation, _ time.Time) error {
			r.Notes = notes
			return nil
		},
	})
}
