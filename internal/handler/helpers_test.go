package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/obakeng/academy-meals/internal/config"
	"github.com/obakeng/academy-meals/internal/database"
	"github.com/obakeng/academy-meals/internal/handler"
	"github.com/obakeng/academy-meals/internal/middleware"
	"github.com/obakeng/academy-meals/internal/model"
	"github.com/obakeng/academy-meals/internal/repository"
	"github.com/obakeng/academy-meals/internal/router"
	"github.com/obakeng/academy-meals/internal/utils"
)

// testEnv bundles the router and repositories every handler test needs,
// backed by an in-memory sqlite database.
type testEnv struct {
	Echo      *echo.Echo
	DB        *gorm.DB
	Cfg       config.Config
	Users     *repository.UserRepo
	Bookings  *repository.BookingRepo
	Menus     *repository.MenuRepo
	Cards     *repository.CardRepo
	Reminders *repository.ReminderRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// A pooled second connection would see its own empty :memory: db.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	cfg := config.Config{
		JWTSecret:     "test-secret",
		SessionTTLMin: 60,
		BcryptCost:    bcrypt.MinCost,
	}
	env := &testEnv{
		DB:        db,
		Cfg:       cfg,
		Users:     repository.NewUserRepo(db),
		Bookings:  repository.NewBookingRepo(db),
		Menus:     repository.NewMenuRepo(db),
		Cards:     repository.NewCardRepo(db),
		Reminders: repository.NewReminderRepo(db),
	}

	auth := handler.NewAuthHandler(cfg, env.Users, env.Bookings)
	student := handler.NewStudentHandler(env.Bookings, env.Menus, env.Reminders, nil)
	manager := handler.NewManagerHandler(env.Bookings, env.Menus)
	accommodation := handler.NewAccommodationHandler(env.Users, env.Cards)

	env.Echo = echo.New()
	router.Register(env.Echo, auth, student, manager, accommodation, cfg.JWTSecret, nil)
	return env
}

// seedUser creates an account directly through the repository and returns
// the stored row.
func (env *testEnv) seedUser(t *testing.T, email string, role model.Role) model.User {
	t.Helper()
	id, err := env.Users.Create(context.Background(), "A.B", "Tester", email, "longenough", role, env.Cfg.BcryptCost)
	require.NoError(t, err)
	u, err := env.Users.GetByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

// sessionFor issues a session cookie value for the user.
func (env *testEnv) sessionFor(t *testing.T, u model.User) *http.Cookie {
	t.Helper()
	tok, err := utils.NewSessionToken(env.Cfg.JWTSecret, u.ID, u.Role, env.Cfg.SessionTTLMin)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: tok.Token}
}

// perform sends a form-encoded request through the router and records the
// response.
func (env *testEnv) perform(method, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	env.Echo.ServeHTTP(rec, req)
	return rec
}

func itoa(id uint64) string { return strconv.FormatUint(id, 10) }

// mealForm builds the four multi-value meal fields of a booking form.
func mealForm(breakfast, lunch, brunch, supper []string) url.Values {
	form := url.Values{}
	form["breakfast"] = breakfast
	form["lunch"] = lunch
	form["brunch"] = brunch
	form["supper"] = supper
	return form
}
