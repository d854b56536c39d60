package reservation

import (
	"time"

	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

const MaxNotesLength = 500

// ===============================
// Domain Actions
// ===============================

func Approve(r *models.Reservation, now time.Time) error {
	if err := CanApprove(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusApproved)
	r.ApprovedAt = &now
	return nil
}

func Cancel(r *models.Reservation, now time.Time) error {
	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
	return nil
}

func Complete(r *models.Reservation, now time.Time) error {
	if err := CanComplete(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCompleted)
	r.CompletedAt = &now
	return nil
}

func ValidateNotes(notes string) error {
	if len([]rune(notes)) > MaxNotesLength {
		return httperr.ErrValidation("notes", "must be at most 500 characters")
	}
	return nil
}
