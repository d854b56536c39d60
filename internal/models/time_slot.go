package models

import "time"

type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID uint      `gorm:"not null;uniqueIndex:idx_time_slots_service_start,priority:1" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	StartTime time.Time `gorm:"not null;uniqueIndex:idx_time_slots_service_start,priority:2" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	IsAvailable bool `gorm:"not null;index" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
}
