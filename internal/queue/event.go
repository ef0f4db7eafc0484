// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them as reminders.
package queue

// BookingConfirmedQueue is the broker queue carrying booking confirmations.
const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is published when a student's weekly booking is
// stored. It carries enough information for downstream consumers to write
// a reminder or notify the student without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	Week        int    `json:"week"`
	ConfirmedAt string `json:"confirmed_at"`
}
