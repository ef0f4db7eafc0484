// Package week derives ISO-8601 week numbers and applies the fixed
// one-week booking lead used everywhere a week value is stored or queried.
package week

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned by Number when the given year/month/day do not
// form a real calendar date (e.g. 2024-02-30).
var ErrInvalidDate = errors.New("invalid calendar date")

// Lead is the fixed offset between the current ISO week and the week a
// booking or menu is stored under. Bookings are always made one week ahead.
const Lead = 1

// Number returns the ISO-8601 week number (1-53) for the given calendar
// date. Week 1 is the week containing the year's first Thursday.
func Number(year int, month int, day int) (int, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, ErrInvalidDate
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range values (Feb 30 -> Mar 1), so a
	// round trip that changes the date means the input was not a real one.
	y, m, dd := d.Date()
	if y != year || m != time.Month(month) || dd != day {
		return 0, ErrInvalidDate
	}
	_, wk := d.ISOWeek()
	return wk, nil
}

// Current returns the ISO week number of t.
func Current(t time.Time) int {
	_, wk := t.ISOWeek()
	return wk
}

// BookingWeek returns the week value under which bookings and menus for t
// are stored: the current ISO week plus the booking lead.
func BookingWeek(t time.Time) int {
	return Current(t) + Lead
}
