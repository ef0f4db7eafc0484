package model

import "time"

// BookingModificationLog is part of the persisted schema but no route
// writes to it; the table is migrated for compatibility with the existing
// database layout only.
type BookingModificationLog struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID uint64    `gorm:"not null;index" json:"booking_id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Text      string    `gorm:"size:10000" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name for BookingModificationLog.
func (BookingModificationLog) TableName() string { return "booking_modification_logs" }
