package model

import "time"

// Reminder is a notification row written for a user, timestamped at
// creation. Booking confirmations arriving over the broker are recorded
// here by the queue consumer.
type Reminder struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Type      string    `gorm:"size:30" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name for Reminder.
func (Reminder) TableName() string { return "reminders" }

// ReminderTypeBookingConfirmation marks reminders written when a booking
// confirmed event is consumed.
const ReminderTypeBookingConfirmation = "booking_confirmation"
