package model

import "time"

// Booking records one user's meal selections for a stored week. MealType
// holds the encoded weekly record produced by the mealplan package. The
// unique index over (user_id, week) enforces at most one booking per user
// per week at the store level, closing the check-then-insert race between
// concurrent submissions.
type Booking struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_booking_user_week,unique" json:"user_id"`
	Week      int       `gorm:"not null;index:idx_booking_user_week,unique" json:"week"`
	MealType  string    `gorm:"size:255" json:"meal_type"`
	Status    string    `gorm:"size:20" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name for Booking.
func (Booking) TableName() string { return "bookings" }

// BookingStatusConfirmed is the status written on every successful booking.
const BookingStatusConfirmed = "confirmed"
