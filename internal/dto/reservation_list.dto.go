package dto

import "time"

type ReservationListDTO struct {
	ID     uint   `json:"id"`
	Code   string `json:"code"`
	Status string `json:"status"`
	Notes  string `json:"notes"`

	ServiceID   uint    `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`

	TimeSlotID uint      `json:"time_slot_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`

	UserID    uint   `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`

	CreatedAt time.Time `json:"created_at"`
}

type DashboardDTO struct {
	TotalServices        int64 `json:"total_services"`
	TotalReservations    int64 `json:"total_reservations"`
	PendingReservations  int64 `json:"pending_reservations"`
	ApprovedReservations int64 `json:"approved_reservations"`

	Recent []ReservationListDTO `json:"recent"`
}

type DeleteServiceResultDTO struct {
	ServiceID           uint  `json:"service_id"`
	DeletedTimeSlots    int64 `json:"deleted_time_slots"`
	DeletedReservations int64 `json:"deleted_reservations"`
}
