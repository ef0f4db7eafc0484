package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	breakfast := []string{"1", "0", "1", "0", "0"} // Mon, Wed
	lunch := []string{"0", "0", "0", "0", "0"}
	brunch := []string{"1", "0"} // Sat
	supper := []string{"0", "0", "0", "0", "0", "0", "1"} // Sun

	record := Encode(breakfast, lunch, brunch, supper)
	slots, err := Decode(record)
	require.NoError(t, err)
	require.Len(t, slots, 19)

	booked := map[int]bool{}
	for i, s := range slots {
		if s.Status == StatusBooked {
			booked[i] = true
		}
	}
	// Positions follow the chunk layout: breakfast 0-4, lunch 5-9,
	// brunch 10-11, supper 12-18.
	assert.Equal(t, map[int]bool{0: true, 2: true, 10: true, 18: true}, booked)
}

func TestDecodeDayNamesRestartPerChunk(t *testing.T) {
	tokens := make([]string, 19)
	for i := range tokens {
		tokens[i] = "0"
	}
	slots, err := DecodeTokens(tokens)
	require.NoError(t, err)

	// Every chunk starts labelling from Monday again, including the
	// 2-slot weekend brunch chunk.
	assert.Equal(t, "Monday", slots[0].Day)
	assert.Equal(t, "Friday", slots[4].Day)
	assert.Equal(t, "Monday", slots[5].Day)
	assert.Equal(t, "Monday", slots[10].Day)
	assert.Equal(t, "Tuesday", slots[11].Day)
	assert.Equal(t, "Monday", slots[12].Day)
	assert.Equal(t, "Sunday", slots[18].Day)
}

func TestDecodeShortRecord(t *testing.T) {
	_, err := Decode("v1:1,0,1")
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = Decode("")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestDecodeIgnoresSurplusTokens(t *testing.T) {
	tokens := make([]string, 25)
	for i := range tokens {
		tokens[i] = "1"
	}
	slots, err := DecodeTokens(tokens)
	require.NoError(t, err)
	assert.Len(t, slots, 19)
}

func TestDecodeUnversionedRecord(t *testing.T) {
	tokens := make([]string, 19)
	for i := range tokens {
		tokens[i] = "0"
	}
	record := Encode(tokens[:5], tokens[5:10], tokens[10:12], tokens[12:])
	slots, err := Decode(record[len("v1:"):])
	require.NoError(t, err)
	assert.Len(t, slots, 19)
}

func TestMenuRoundTrip(t *testing.T) {
	m := Menu{
		Breakfast: WeekdayMeals{Monday: "porridge", Friday: "eggs"},
		Brunch:    WeekendMeals{Saturday: "toast", Sunday: "pancakes"},
		Supper:    FullWeekMeals{Monday: "stew", Sunday: "roast"},
	}
	content, err := EncodeMenu(m)
	require.NoError(t, err)

	got, err := DecodeMenu(content)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, m.Breakfast, got.Breakfast)
	assert.Equal(t, m.Brunch, got.Brunch)
	assert.Equal(t, m.Supper, got.Supper)
}

func TestDecodeMenuRejectsGarbage(t *testing.T) {
	_, err := DecodeMenu("not json")
	assert.Error(t, err)
}
