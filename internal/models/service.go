package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Description     string  `gorm:"size:500" json:"description"`
	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int     `gorm:"not null" json:"duration_minutes"`
	IsActive        bool    `gorm:"not null;index" json:"is_active"`
	ImageURL        string  `gorm:"size:255" json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
