package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/obakeng/academy-meals/internal/model"
)

// ReminderRepo persists user reminders. Rows are written by the queue
// consumer when booking confirmations arrive.
type ReminderRepo struct{ db *gorm.DB }

// NewReminderRepo returns a ReminderRepo bound to the given database.
func NewReminderRepo(db *gorm.DB) *ReminderRepo { return &ReminderRepo{db: db} }

// Create inserts a reminder; the timestamp defaults to creation time.
func (r *ReminderRepo) Create(ctx context.Context, rem *model.Reminder) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

// ListByUser returns a user's reminders, newest first.
func (r *ReminderRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id desc").Find(&reminders).Error
	return reminders, err
}
