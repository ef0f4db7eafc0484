// Package mealplan encodes weekly meal selections into the single textual
// record persisted on a booking row, and decodes stored records back into
// day/status pairs for display.
//
// A record is the four per-meal flag lists concatenated in fixed order
// (breakfast, lunch, brunch, supper) and serialized as a versioned,
// comma-joined token string. Decoding partitions the tokens into fixed
// chunks of sizes 5, 5, 2 and 7: weekday breakfast slots, weekday lunch
// slots, weekend brunch slots and supper for all seven days.
package mealplan

import (
	"errors"
	"strings"
)

// recordVersion prefixes every encoded record so the stored format can
// evolve without guessing at the shape of old rows.
const recordVersion = "v1:"

// chunkSizes partitions a decoded record into its per-meal day blocks.
var chunkSizes = [4]int{5, 5, 2, 7}

// minTokens is the number of tokens a well formed record carries.
const minTokens = 19

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ErrMalformedRecord is returned when a stored record holds fewer tokens
// than the fixed chunk layout requires.
var ErrMalformedRecord = errors.New("malformed booking record")

const (
	StatusBooked    = "Booked"
	StatusNotBooked = "Not Booked"
)

// Slot pairs a day name with its booked status for one meal slot.
type Slot struct {
	Day    string `json:"day"`
	Status string `json:"status"`
}

// Encode concatenates the four meal flag lists in fixed order and
// serializes them as a single versioned record. It is the sole persisted
// representation of a week's meal choices.
func Encode(breakfast, lunch, brunch, supper []string) string {
	tokens := make([]string, 0, len(breakfast)+len(lunch)+len(brunch)+len(supper))
	tokens = append(tokens, breakfast...)
	tokens = append(tokens, lunch...)
	tokens = append(tokens, brunch...)
	tokens = append(tokens, supper...)
	return recordVersion + strings.Join(tokens, ",")
}

// Decode splits a stored record into tokens and partitions them into the
// fixed chunk layout. Token "1" maps to StatusBooked, anything else to
// StatusNotBooked. Day names restart at Monday for every chunk; the final
// 7-token supper chunk is the only one covering the whole week.
//
// Records with fewer than 19 tokens fail with ErrMalformedRecord. Surplus
// tokens beyond the chunk layout are ignored.
func Decode(record string) ([]Slot, error) {
	return DecodeTokens(SplitRecord(record))
}

// SplitRecord strips the version prefix and splits a record into its raw
// tokens. Unversioned records are split as-is.
func SplitRecord(record string) []string {
	record = strings.TrimPrefix(record, recordVersion)
	return strings.Split(record, ",")
}

// DecodeTokens maps raw tokens into day/status slots using the fixed chunk
// layout. It is used directly by the manager bookings view, which groups
// tokens across a user's rows before decoding.
func DecodeTokens(tokens []string) ([]Slot, error) {
	if len(tokens) < minTokens {
		return nil, ErrMalformedRecord
	}
	slots := make([]Slot, 0, minTokens)
	idx := 0
	for _, size := range chunkSizes {
		for day := 0; day < size; day++ {
			status := StatusNotBooked
			if tokens[idx] == "1" {
				status = StatusBooked
			}
			slots = append(slots, Slot{Day: dayNames[day], Status: status})
			idx++
		}
	}
	return slots, nil
}
