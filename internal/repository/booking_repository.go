package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/obakeng/academy-meals/internal/model"
)

// BookingRepo persists weekly meal bookings.
type BookingRepo struct{ db *gorm.DB }

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *gorm.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts a booking. The unique (user_id, week) index turns a
// second booking for the same user and week into ErrDuplicateBooking,
// regardless of what any earlier existence check observed.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateBooking
		}
		return err
	}
	return nil
}

// ListByUser returns all bookings belonging to a user, oldest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&bookings).Error
	return bookings, err
}

// ListByWeek returns all bookings stored under a week, ordered by user id
// for the manager's grouped view.
func (r *BookingRepo) ListByWeek(ctx context.Context, wk int) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).Where("week = ?", wk).Order("user_id").Find(&bookings).Error
	return bookings, err
}

// ExistsForUserWeek reports whether a user holds any booking for the week.
func (r *BookingRepo) ExistsForUserWeek(ctx context.Context, userID uint64, wk int) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("user_id = ? AND week = ?", userID, wk).Count(&n).Error
	return n > 0, err
}

// DeleteForUserWeek removes the user's booking for the week. Missing rows
// yield ErrNotFound so a modify on a week with no booking is reported
// rather than silently ignored.
func (r *BookingRepo) DeleteForUserWeek(ctx context.Context, userID uint64, wk int) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND week = ?", userID, wk).Delete(&model.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
