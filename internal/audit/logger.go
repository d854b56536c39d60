package audit

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// Actions recorded in the audit trail.
const (
	ActionReservationCreated   = "reservation_created"
	ActionReservationApproved  = "reservation_approved"
	ActionReservationRejected  = "reservation_rejected"
	ActionReservationCancelled = "reservation_cancelled"
	ActionReservationCompleted = "reservation_completed"
	ActionReservationEdited    = "reservation_edited"
	ActionServiceCreated       = "service_created"
	ActionServiceUpdated       = "service_updated"
	ActionServiceDeleted       = "service_deleted"
	ActionServiceImageUploaded = "service_image_uploaded"
	ActionTimeSlotCreated      = "time_slot_created"
	ActionUserRegistered       = "user_registered"
)

const (
	EntityReservation = "reservation"
	EntityService     = "service"
	EntityTimeSlot    = "time_slot"
	EntityUser        = "user"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Logger writes audit rows through the handle it was built with. Pass a
// transaction handle to commit the row together with the change it records.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	return l.db.WithContext(ctx).Create(ev.Model()).Error
}

func (ev Event) Model() *models.AuditLog {
	var meta datatypes.JSON
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}

	return &models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: meta,
	}
}

// Ptr is a helper for the optional id fields.
func Ptr(id uint) *uint {
	return &id
}
