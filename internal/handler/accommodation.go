package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/obakeng/academy-meals/internal/model"
	"github.com/obakeng/academy-meals/internal/repository"
)

// AccommodationHandler serves account management and access card issuing
// for the accommodation role.
type AccommodationHandler struct {
	Users *repository.UserRepo
	Cards *repository.CardRepo
}

// NewAccommodationHandler constructs an AccommodationHandler.
func NewAccommodationHandler(users *repository.UserRepo, cards *repository.CardRepo) *AccommodationHandler {
	if users == nil || cards == nil {
		panic("nil repository passed to NewAccommodationHandler")
	}
	return &AccommodationHandler{Users: users, Cards: cards}
}

// Dashboard answers GET /accommodation/ with every account.
func (h *AccommodationHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// DeletePage answers GET /accommodation/delete/.
func (h *AccommodationHandler) DeletePage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Submit a user id to delete the account"})
}

// DeleteUser answers POST /accommodation/delete/. Only the user row is
// removed; bookings, cards and reminders referencing it are left behind,
// as the existing deployment does.
func (h *AccommodationHandler) DeleteUser(c echo.Context) error {
	userID, err := strconv.ParseUint(strings.TrimSpace(c.FormValue("user_id")), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Enter a valid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Deletion successful"})
}

// IssueCard answers POST /accommodation/cards/ by minting an access card
// with a generated RFID code for an existing user.
func (h *AccommodationHandler) IssueCard(c echo.Context) error {
	userID, err := strconv.ParseUint(strings.TrimSpace(c.FormValue("user_id")), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Enter a valid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	card := model.AccessCard{UserID: userID, RFIDCode: uuid.NewString()}
	if err := h.Cards.Create(ctx, &card); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue card failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Access card issued",
		"card_id":   card.ID,
		"rfid_code": card.RFIDCode,
	})
}

// ListCards answers GET /accommodation/cards/ with every issued card.
func (h *AccommodationHandler) ListCards(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cards, err := h.Cards.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"cards": cards})
}
