// Package repository is the data access layer. Each repository wraps the
// shared GORM handle and exposes the queries one entity needs. Sentinel
// errors defined here let handlers map store failures onto HTTP responses
// without inspecting driver internals.
package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested row does not exist. Handlers
// translate it into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// ErrEmailExists is returned when a sign-up collides with a registered
// email address.
var ErrEmailExists = errors.New("email already exists")

// ErrDuplicateBooking is returned when a user already holds a booking for
// the target week. Handlers translate it into an HTTP 409 response.
var ErrDuplicateBooking = errors.New("booking already exists for this week")

// ErrDuplicateMenu is returned when a menu has already been published for
// the target week.
var ErrDuplicateMenu = errors.New("menu already exists for this week")

// isDuplicateKey reports whether err is a unique-key violation. GORM
// translates some driver errors itself; the string checks cover sqlite's
// "UNIQUE constraint failed" and MySQL's error 1062 where it does not.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "1062")
}

// asNotFound maps GORM's record-not-found onto the package sentinel and
// passes every other error through unchanged.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
