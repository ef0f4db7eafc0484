package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/obakeng/academy-meals/internal/mealplan"
	"github.com/obakeng/academy-meals/internal/model"
	"github.com/obakeng/academy-meals/internal/queue"
	"github.com/obakeng/academy-meals/internal/repository"
	"github.com/obakeng/academy-meals/internal/service"
	"github.com/obakeng/academy-meals/internal/week"
)

// StudentHandler serves the booking pages for the student role.
type StudentHandler struct {
	Bookings  *repository.BookingRepo
	Menus     *repository.MenuRepo
	Reminders *repository.ReminderRepo
	Publisher *service.EventPublisher // nil disables event publishing
}

// NewStudentHandler constructs a StudentHandler with its repositories.
// The publisher may be nil.
func NewStudentHandler(bookings *repository.BookingRepo, menus *repository.MenuRepo, reminders *repository.ReminderRepo, publisher *service.EventPublisher) *StudentHandler {
	if bookings == nil || menus == nil || reminders == nil {
		panic("nil repository passed to NewStudentHandler")
	}
	return &StudentHandler{Bookings: bookings, Menus: menus, Reminders: reminders, Publisher: publisher}
}

// mealSelections pulls the four multi-value meal fields out of the form.
func mealSelections(c echo.Context) (breakfast, lunch, brunch, supper []string, err error) {
	form, err := c.FormParams()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return form["breakfast"], form["lunch"], form["brunch"], form["supper"], nil
}

// Dashboard answers GET /student/ with the week being booked and, when
// published, the decoded menu for it.
func (h *StudentHandler) Dashboard(c echo.Context) error {
	now := time.Now()
	wk := week.BookingWeek(now)

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	resp := echo.Map{"week": wk}
	row, err := h.Menus.GetByWeek(ctx, wk)
	switch {
	case err == nil:
		menu, decErr := mealplan.DecodeMenu(row.MenuContent)
		if decErr != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "stored menu is unreadable"})
		}
		resp["menu"] = menu
	case !errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, resp)
}

// Book answers POST /student/. The guard mirrors the existing deployment:
// the submission is rejected whenever a menu row exists for the CURRENT
// ISO week, even though menus and bookings are stored under week+1. The
// unique booking constraint is the real duplicate stop.
func (h *StudentHandler) Book(c echo.Context) error {
	uid, err := getUserID(c.Get("user_id"))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	now := time.Now()

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	menuExists, err := h.Menus.ExistsForWeek(ctx, week.Current(now))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if menuExists {
		return c.JSON(http.StatusConflict, echo.Map{"error": "You have already booked for this week!"})
	}

	breakfast, lunch, brunch, supper, err := mealSelections(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form data"})
	}
	booking := model.Booking{
		UserID:   uid,
		Week:     week.BookingWeek(now),
		MealType: mealplan.Encode(breakfast, lunch, brunch, supper),
		Status:   model.BookingStatusConfirmed,
	}
	if err := h.Bookings.Create(ctx, &booking); err != nil {
		if errors.Is(err, repository.ErrDuplicateBooking) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "You have already booked for this week!"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	// Best effort: a lost confirmation event must not fail the booking.
	_ = h.Publisher.PublishBookingConfirmed(ctx, queue.BookingConfirmedEvent{
		BookingID:   booking.ID,
		UserID:      uid,
		Week:        booking.Week,
		ConfirmedAt: now.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"message": "Your booking was successful"})
}

// ViewBookings answers GET /student/view_bookings/ by decoding the most
// recently created booking into day/status pairs.
func (h *StudentHandler) ViewBookings(c echo.Context) error {
	uid, err := getUserID(c.Get("user_id"))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(bookings) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No bookings found"})
	}
	latest := bookings[len(bookings)-1]
	slots, err := mealplan.Decode(latest.MealType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "stored booking is unreadable"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"week":         latest.Week,
		"status":       latest.Status,
		"booking_info": slots,
	})
}

// ModifyPage answers GET /student/modify_bookings/.
func (h *StudentHandler) ModifyPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Submit new meal selections to replace this week's booking"})
}

// Modify answers POST /student/modify_bookings/: the current user's
// booking for the target week is deleted and a fresh one inserted. Unlike
// the existing deployment, the delete is scoped to the calling user so a
// student can never drop another student's booking.
func (h *StudentHandler) Modify(c echo.Context) error {
	uid, err := getUserID(c.Get("user_id"))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	now := time.Now()
	wk := week.BookingWeek(now)

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Bookings.DeleteForUserWeek(ctx, uid, wk); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No booking to modify for this week"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete booking failed"})
	}

	breakfast, lunch, brunch, supper, err := mealSelections(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form data"})
	}
	booking := model.Booking{
		UserID:   uid,
		Week:     wk,
		MealType: mealplan.Encode(breakfast, lunch, brunch, supper),
		Status:   model.BookingStatusConfirmed,
	}
	if err := h.Bookings.Create(ctx, &booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Your booking was successfully Updated",
		"redirect": "/student/",
	})
}

// ListReminders answers GET /student/reminders/ with the reminders the
// queue consumer has recorded for the current user.
func (h *StudentHandler) ListReminders(c echo.Context) error {
	uid, err := getUserID(c.Get("user_id"))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	reminders, err := h.Reminders.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reminders": reminders})
}
