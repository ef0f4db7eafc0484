package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/obakeng/academy-meals/internal/model"
)

// MenuRepo persists published weekly menus.
type MenuRepo struct{ db *gorm.DB }

// NewMenuRepo returns a MenuRepo bound to the given database.
func NewMenuRepo(db *gorm.DB) *MenuRepo { return &MenuRepo{db: db} }

// Create inserts the menu for its week. Republishing an already published
// week fails with ErrDuplicateMenu via the unique index on week.
func (r *MenuRepo) Create(ctx context.Context, m *model.WeeklyMenu) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateMenu
		}
		return err
	}
	return nil
}

// ExistsForWeek reports whether a menu row exists for the week.
func (r *MenuRepo) ExistsForWeek(ctx context.Context, wk int) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.WeeklyMenu{}).Where("week = ?", wk).Count(&n).Error
	return n > 0, err
}

// GetByWeek fetches the menu published for the week.
func (r *MenuRepo) GetByWeek(ctx context.Context, wk int) (model.WeeklyMenu, error) {
	var m model.WeeklyMenu
	err := r.db.WithContext(ctx).Where("week = ?", wk).First(&m).Error
	return m, asNotFound(err)
}
