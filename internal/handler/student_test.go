package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obakeng/academy-meals/internal/mealplan"
	"github.com/obakeng/academy-meals/internal/model"
	"github.com/obakeng/academy-meals/internal/week"
)

// sampleSelections returns the selections the tests reuse: breakfast on
// Monday and Wednesday, brunch on Saturday, supper on Sunday.
func sampleSelections() ([]string, []string, []string, []string) {
	return []string{"1", "0", "1", "0", "0"},
		[]string{"0", "0", "0", "0", "0"},
		[]string{"1", "0"},
		[]string{"0", "0", "0", "0", "0", "0", "1"}
}

func TestBookInsertsConfirmedBooking(t *testing.T) {
	env := newTestEnv(t)
	student := env.seedUser(t, "book@campus.ac", model.RoleStudent)
	cookie := env.sessionFor(t, student)

	breakfast, lunch, brunch, supper := sampleSelections()
	rec := env.perform(http.MethodPost, "/student/", mealForm(breakfast, lunch, brunch, supper), cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Your booking was successful")

	bookings, err := env.Bookings.ListByUser(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	b := bookings[0]
	assert.Equal(t, model.BookingStatusConfirmed, b.Status)
	assert.Equal(t, week.BookingWeek(time.Now()), b.Week)

	// The stored record decodes back to exactly the submitted selections.
	slots, err := mealplan.Decode(b.MealType)
	require.NoError(t, err)
	require.Len(t, slots, 19)
	for i, slot := range slots {
		want := mealplan.StatusNotBooked
		if i == 0 || i == 2 || i == 10 || i == 18 {
			want = mealplan.StatusBooked
		}
		assert.Equal(t, want, slot.Status, "slot %d (%s)", i, slot.Day)
	}
}

func TestBookSecondTimeIsRejected(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.sessionFor(t, env.seedUser(t, "twice@campus.ac", model.RoleStudent))
	breakfast, lunch, brunch, supper := sampleSelections()

	rec := env.perform(http.MethodPost, "/student/", mealForm(breakfast, lunch, brunch, supper), cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.perform(http.MethodPost, "/student/", mealForm(breakfast, lunch, brunch, supper), cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "You have already booked for this week!")
}

func TestBookBlockedWhenMenuExistsForCurrentWeek(t *testing.T) {
	env := newTestEnv(t)
	student := env.seedUser(t, "blocked@campus.ac", model.RoleStudent)
	cookie := env.sessionFor(t, student)

	// The guard checks the CURRENT ISO week, not the stored target week.
	content, err := mealplan.EncodeMenu(mealplan.Menu{})
	require.NoError(t, err)
	require.NoError(t, env.Menus.Create(context.Background(), &model.WeeklyMenu{
		Week:        week.Current(time.Now()),
		MenuContent: content,
	}))

	breakfast, lunch, brunch, supper := sampleSelections()
	rec := env.perform(http.MethodPost, "/student/", mealForm(breakfast, lunch, brunch, supper), cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "You have already booked for this week!")

	bookings, err := env.Bookings.ListByUser(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestViewBookings(t *testing.T) {
	env := newTestEnv(t)
	student := env.seedUser(t, "view@campus.ac", model.RoleStudent)
	cookie := env.sessionFor(t, student)

	rec := env.perform(http.MethodGet, "/student/view_bookings/", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	breakfast, lunch, brunch, supper := sampleSelections()
	rec = env.perform(http.MethodPost, "/student/", mealForm(breakfast, lunch, brunch, supper), cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.perform(http.MethodGet, "/student/view_bookings/", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Week        int             `json:"week"`
		BookingInfo []mealplan.Slot `json:"booking_info"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, week.BookingWeek(time.Now()), resp.Week)
	require.Len(t, resp.BookingInfo, 19)
	assert.Equal(t, mealplan.Slot{Day: "Monday", Status: mealplan.StatusBooked}, resp.BookingInfo[0])
	assert.Equal(t, mealplan.Slot{Day: "Tuesday", Status: mealplan.StatusNotBooked}, resp.BookingInfo[1])
}

func TestModifyReplacesOwnBookingOnly(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice@campus.ac", model.RoleStudent)
	bob := env.seedUser(t, "bob@campus.ac", model.RoleStudent)
	aliceCookie := env.sessionFor(t, alice)
	bobCookie := env.sessionFor(t, bob)

	breakfast, lunch, brunch, supper := sampleSelections()
	require.Equal(t, http.StatusCreated,
		env.perform(http.MethodPost, "/student/", mealForm(breakfast, lunch, brunch, supper), aliceCookie).Code)
	require.Equal(t, http.StatusCreated,
		env.perform(http.MethodPost, "/student/", mealForm(breakfast, lunch, brunch, supper), bobCookie).Code)

	// Bob books every supper instead.
	newSupper := []string{"1", "1", "1", "1", "1", "1", "1"}
	rec := env.perform(http.MethodPost, "/student/modify_bookings/",
		mealForm([]string{"0", "0", "0", "0", "0"}, lunch, []string{"0", "0"}, newSupper), bobCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your booking was successfully Updated")

	// Alice's booking is untouched.
	aliceBookings, err := env.Bookings.ListByUser(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceBookings, 1)

	bobBookings, err := env.Bookings.ListByUser(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Len(t, bobBookings, 1)
	slots, err := mealplan.Decode(bobBookings[0].MealType)
	require.NoError(t, err)
	for i := 12; i < 19; i++ {
		assert.Equal(t, mealplan.StatusBooked, slots[i].Status)
	}
}

func TestModifyWithoutBooking(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.sessionFor(t, env.seedUser(t, "none@campus.ac", model.RoleStudent))
	breakfast, lunch, brunch, supper := sampleSelections()

	rec := env.perform(http.MethodPost, "/student/modify_bookings/", mealForm(breakfast, lunch, brunch, supper), cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListReminders(t *testing.T) {
	env := newTestEnv(t)
	student := env.seedUser(t, "remind@campus.ac", model.RoleStudent)
	cookie := env.sessionFor(t, student)

	require.NoError(t, env.Reminders.Create(context.Background(), &model.Reminder{
		UserID: student.ID,
		Type:   model.ReminderTypeBookingConfirmation,
	}))

	rec := env.perform(http.MethodGet, "/student/reminders/", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), model.ReminderTypeBookingConfirmation)
}
