package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/obakeng/academy-meals/internal/config"
	"github.com/obakeng/academy-meals/internal/middleware"
	"github.com/obakeng/academy-meals/internal/model"
	"github.com/obakeng/academy-meals/internal/repository"
	"github.com/obakeng/academy-meals/internal/utils"
	"github.com/obakeng/academy-meals/internal/week"
)

// AuthHandler serves login, logout, sign-up and the RFID access check.
type AuthHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Bookings *repository.BookingRepo
}

// NewAuthHandler constructs an AuthHandler with its repositories.
func NewAuthHandler(cfg config.Config, users *repository.UserRepo, bookings *repository.BookingRepo) *AuthHandler {
	if users == nil || bookings == nil {
		panic("nil repository passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Users: users, Bookings: bookings}
}

// landingPath maps a role onto its post-login destination. Roles outside
// the enumeration fall back to the home page; sign-up rejects them, so
// this only matters for rows written by other tooling.
func landingPath(role model.Role) string {
	switch role {
	case model.RoleStudent:
		return "/student/"
	case model.RoleManager:
		return "/manager/"
	case model.RoleAccommodation:
		return "/accommodation/"
	case model.RoleAccess:
		return "/access"
	}
	return "/"
}

// LoginPage answers GET /login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Log in with email and password"})
}

// Login answers POST /login. The two failure messages stay distinct, as
// the existing deployment's users expect them.
func (h *AuthHandler) Login(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Email does not exist."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Incorrect password, try again."})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.SessionTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    tok.Token,
		Path:     "/",
		Expires:  tok.Exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Logged in successfully!",
		"role":     u.Role,
		"redirect": landingPath(u.Role),
	})
}

// Logout answers GET /logout by expiring the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out", "redirect": "/login"})
}

// SignUpPage answers GET /accommodation/sign-up.
func (h *AuthHandler) SignUpPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Create a user profile"})
}

// SignUp answers POST /accommodation/sign-up. Validation runs in the same
// order as the existing deployment and stops at the first failure, each
// with its distinct message. Unlike the original, the role must belong to
// the closed role set.
func (h *AuthHandler) SignUp(c echo.Context) error {
	initials := strings.TrimSpace(c.FormValue("initials"))
	surname := strings.TrimSpace(c.FormValue("surname"))
	email1 := strings.TrimSpace(c.FormValue("email1"))
	email2 := strings.TrimSpace(c.FormValue("email2"))
	password1 := c.FormValue("password1")
	password2 := c.FormValue("password2")
	roleValue := strings.TrimSpace(c.FormValue("role"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	_, err := h.Users.GetByEmail(ctx, email1)
	switch {
	case err == nil:
		return c.JSON(http.StatusConflict, echo.Map{"error": "Email already exists."})
	case !errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	role, roleOK := model.ParseRole(roleValue)
	switch {
	case len(initials) == 0:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Enter valid initials"})
	case len(surname) < 2:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Enter valid surname"})
	case email1 != email2:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Emails do not match"})
	case len(email1) < 4:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Enter valid email"})
	case password1 != password2:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Passwords do not match"})
	case len(password1) < 8:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Password characters must be more than 7"})
	case !roleOK:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Enter valid role"})
	}

	if _, err := h.Users.Create(ctx, initials, surname, email1, password1, role, h.Cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Email already exists."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "User profile created!", "redirect": "/login"})
}

// AccessPage answers GET /access.
func (h *AuthHandler) AccessPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Submit a user id to check access"})
}

// AccessCheck answers POST /access: access is granted when the submitted
// user holds a booking for the stored target week, the same week value
// bookings are written under.
func (h *AuthHandler) AccessCheck(c echo.Context) error {
	userID, err := strconv.ParseUint(strings.TrimSpace(c.FormValue("user_id")), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Enter a valid user id"})
	}
	wk := week.BookingWeek(time.Now())

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	exists, err := h.Bookings.ExistsForUserWeek(ctx, userID, wk)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !exists {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Booking not found, contact management for enquiries, Access Denied",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Booking confirmed, access granted"})
}

// Home answers GET / with the session identity.
func (h *AuthHandler) Home(c echo.Context) error {
	uid, err := getUserID(c.Get("user_id"))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user_id": uid, "role": c.Get("role")})
}
