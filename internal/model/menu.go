package model

import "time"

// WeeklyMenu holds the published menu for one stored week. MenuContent is
// the versioned JSON produced by mealplan.EncodeMenu. The unique index on
// week keeps the at-most-one-menu-per-week invariant.
type WeeklyMenu struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Week        int       `gorm:"not null;uniqueIndex" json:"week"`
	MenuContent string    `gorm:"size:1000" json:"menu_content"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides the table name for WeeklyMenu.
func (WeeklyMenu) TableName() string { return "weekly_menus" }
