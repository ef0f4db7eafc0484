package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/obakeng/academy-meals/internal/mealplan"
	"github.com/obakeng/academy-meals/internal/model"
	"github.com/obakeng/academy-meals/internal/repository"
	"github.com/obakeng/academy-meals/internal/week"
)

// ManagerHandler serves the menu publishing and bookings dashboards for
// the manager role.
type ManagerHandler struct {
	Bookings *repository.BookingRepo
	Menus    *repository.MenuRepo
}

// NewManagerHandler constructs a ManagerHandler with its repositories.
func NewManagerHandler(bookings *repository.BookingRepo, menus *repository.MenuRepo) *ManagerHandler {
	if bookings == nil || menus == nil {
		panic("nil repository passed to NewManagerHandler")
	}
	return &ManagerHandler{Bookings: bookings, Menus: menus}
}

// Dashboard answers GET /manager/ with the target week and whether its
// menu has been published yet.
func (h *ManagerHandler) Dashboard(c echo.Context) error {
	wk := week.BookingWeek(time.Now())

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	published, err := h.Menus.ExistsForWeek(ctx, wk)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"week": wk, "menu_published": published})
}

// MenuPage answers GET /manager/menu/.
func (h *ManagerHandler) MenuPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Submit the weekly menu fields"})
}

// PublishMenu answers POST /manager/menu/. The fourteen named form fields
// are serialized as versioned JSON and stored under the target week; a
// week can only be published once.
func (h *ManagerHandler) PublishMenu(c echo.Context) error {
	menu := mealplan.Menu{
		Breakfast: mealplan.WeekdayMeals{
			Monday:    c.FormValue("breakfast_monday"),
			Tuesday:   c.FormValue("breakfast_tuesday"),
			Wednesday: c.FormValue("breakfast_wednesday"),
			Thursday:  c.FormValue("breakfast_thursday"),
			Friday:    c.FormValue("breakfast_friday"),
		},
		Brunch: mealplan.WeekendMeals{
			Saturday: c.FormValue("brunch_saturday"),
			Sunday:   c.FormValue("brunch_sunday"),
		},
		Supper: mealplan.FullWeekMeals{
			Monday:    c.FormValue("supper_monday"),
			Tuesday:   c.FormValue("supper_tuesday"),
			Wednesday: c.FormValue("supper_wednesday"),
			Thursday:  c.FormValue("supper_thursday"),
			Friday:    c.FormValue("supper_friday"),
			Saturday:  c.FormValue("supper_saturday"),
			Sunday:    c.FormValue("supper_sunday"),
		},
	}
	content, err := mealplan.EncodeMenu(menu)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encode menu failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	row := model.WeeklyMenu{Week: week.BookingWeek(time.Now()), MenuContent: content}
	if err := h.Menus.Create(ctx, &row); err != nil {
		if errors.Is(err, repository.ErrDuplicateMenu) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "A menu for this week has already been published"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create menu failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Menu update was successful", "redirect": "/manager/"})
}

// userBookings is one row of the manager's bookings view: a student and
// their decoded weekly schedule.
type userBookings struct {
	UserID uint64          `json:"user_id"`
	Slots  []mealplan.Slot `json:"slots"`
}

// WeekBookings answers GET /manager/bookings/ with every booking stored
// under the target week, grouped per user and decoded. Rows arrive
// ordered by user id; tokens from multiple rows of the same user are
// concatenated before decoding, matching how the view has always grouped.
func (h *ManagerHandler) WeekBookings(c echo.Context) error {
	wk := week.BookingWeek(time.Now())

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rows, err := h.Bookings.ListByWeek(ctx, wk)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	var result []userBookings
	var tokens []string
	flush := func(uid uint64) error {
		slots, decErr := mealplan.DecodeTokens(tokens)
		if decErr != nil {
			return decErr
		}
		result = append(result, userBookings{UserID: uid, Slots: slots})
		return nil
	}
	for i, row := range rows {
		tokens = append(tokens, mealplan.SplitRecord(row.MealType)...)
		last := i == len(rows)-1 || rows[i+1].UserID != row.UserID
		if last {
			if err := flush(row.UserID); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "stored booking is unreadable"})
			}
			tokens = nil
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"week": wk, "bookings": result})
}
