package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/obakeng/academy-meals/internal/model"
	"github.com/obakeng/academy-meals/internal/utils"
)

// UserRepo persists user accounts.
type UserRepo struct{ db *gorm.DB }

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

// Create hashes the password and inserts a new user, returning its ID.
// A registered email yields ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, initials, surname, email, password string, role model.Role, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	u := model.User{
		Initials:     initials,
		Surname:      surname,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		if isDuplicateKey(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	return u.ID, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return u, asNotFound(err)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	return u, asNotFound(err)
}

// List returns every account ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

// Delete removes the user row by id. Dependent bookings, cards and
// reminders are left in place; rows referencing the user dangle after
// deletion.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
