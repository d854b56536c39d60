package reservation

import "github.com/BruksfildServices01/barbershop-reservation/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusCancelled, StatusCompleted:
		return st, true
	}
	return "", false
}

// IsLive reports whether a reservation in this status holds its slot.
func (s Status) IsLive() bool {
	return s == StatusPending || s == StatusApproved
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transition guards
// ===============================

func CanApprove(current Status) error {
	if current != StatusPending {
		return httperr.ErrInvalidTransition
	}
	return nil
}

// CanCancel also covers rejection: both move a live reservation to cancelled.
func CanCancel(current Status) error {
	switch current {
	case StatusPending, StatusApproved:
		return nil
	case StatusCancelled:
		return httperr.ErrAlreadyCancelled
	}
	return httperr.ErrInvalidTransition
}

func CanComplete(current Status) error {
	if current != StatusApproved {
		return httperr.ErrInvalidTransition
	}
	return nil
}
