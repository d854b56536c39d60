package models

import "time"

type Reservation struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	ServiceID uint `gorm:"not null;index:idx_reservations_user_service,priority:2" json:"service_id"`
	UserID    uint `gorm:"not null;index:idx_reservations_user_service,priority:1" json:"user_id"`

	// At most one live (pending/approved) reservation per slot.
	TimeSlotID uint `gorm:"not null;uniqueIndex:idx_reservations_live_slot,where:status <> 'cancelled' AND status <> 'completed'" json:"time_slot_id"`

	// Foreign keys only; never preloaded.
	Service  Service  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	User     User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	TimeSlot TimeSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Status string `gorm:"size:20;not null;index" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	ApprovedAt  *time.Time `json:"approved_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
