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

// transition is the shared body of the lifecycle use cases: lock the
// reservation, authorize, mutate, optionally release the slot and audit,
// all in one transaction.
type transition struct {
	repo domain.Repository
	log  *zap.Logger
	now  clock
}

type transitionRule struct {
	op        string
	action    string
	authorize func(actor auth.Actor, r *models.Reservation) error
	mutate    func(r *models.Reservation, now time.Time) error
	release   bool
}

func newTransition(repo domain.Repository, log *zap.Logger) transition {
	return transition{repo: repo, log: log, now: utcNow}
}

func ownerOrAdmin(actor auth.Actor, r *models.Reservation) error {
	return actor.RequireOwnerOrAdmin(r.UserID)
}

func (t transition) run(
	ctx context.Context,
	actor auth.Actor,
	reservationID uint,
	rule transitionRule,
) (*models.Reservation, error) {

	var out *models.Reservation

	err := t.repo.WithTx(ctx, func(tx domain.Repository) error {
		res, err := tx.GetReservationForUpdate(ctx, reservationID)
		if err != nil {
			return err
		}

		if rule.authorize != nil {
			if err := rule.authorize(actor, res); err != nil {
				return err
			}
		}

		from := res.Status
		if err := rule.mutate(res, t.now()); err != nil {
			return err
		}

		if err := tx.UpdateReservation(ctx, res); err != nil {
			return err
		}

		if rule.release {
			if err := tx.ReleaseSlot(ctx, res.TimeSlotID); err != nil {
				return err
			}
		}

		meta := map[string]any{"code": res.Code}
		if from != res.Status {
			meta["from"] = from
			meta["to"] = res.Status
		}

		if err := tx.RecordAudit(ctx, audit.Event{
			UserID:   audit.Ptr(actor.UserID),
			Action:   rule.action,
			Entity:   audit.EntityReservation,
			EntityID: audit.Ptr(res.ID),
			Metadata: meta,
		}); err != nil {
			return err
		}

		out = res
		return nil
	})
	if err != nil {
		return nil, logFailure(t.log, rule.op, err)
	}

	return out, nil
}
