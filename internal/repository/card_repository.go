package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/obakeng/academy-meals/internal/model"
)

// CardRepo persists RFID access cards.
type CardRepo struct{ db *gorm.DB }

// NewCardRepo returns a CardRepo bound to the given database.
func NewCardRepo(db *gorm.DB) *CardRepo { return &CardRepo{db: db} }

// Create inserts a card for a user.
func (r *CardRepo) Create(ctx context.Context, c *model.AccessCard) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// List returns every issued card ordered by id.
func (r *CardRepo) List(ctx context.Context) ([]model.AccessCard, error) {
	var cards []model.AccessCard
	err := r.db.WithContext(ctx).Order("id").Find(&cards).Error
	return cards, err
}
