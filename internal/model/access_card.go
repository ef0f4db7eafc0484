package model

import "time"

// AccessCard links a user to the RFID code encoded on their card.
type AccessCard struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	RFIDCode  string    `gorm:"size:36" json:"rfid_code"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name for AccessCard.
func (AccessCard) TableName() string { return "access_cards" }
