// Package router registers the HTTP routes and the middleware protecting
// them. All pages except login, sign-up and the health check require an
// established session; role middleware scopes each dashboard to its role.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/obakeng/academy-meals/internal/handler"
	"github.com/obakeng/academy-meals/internal/middleware"
	"github.com/obakeng/academy-meals/internal/model"
)

// Register wires every route onto the Echo instance. loginLimiter guards
// the credential-carrying login POST; pass nil to leave it unlimited.
func Register(e *echo.Echo, a *handler.AuthHandler, s *handler.StudentHandler, m *handler.ManagerHandler, acc *handler.AccommodationHandler, jwtSecret string, loginLimiter echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Public: login and account sign-up.
	e.GET("/login", a.LoginPage)
	if loginLimiter != nil {
		e.POST("/login", a.Login, loginLimiter)
	} else {
		e.POST("/login", a.Login)
	}
	e.GET("/accommodation/sign-up", a.SignUpPage)
	e.POST("/accommodation/sign-up", a.SignUp)

	session := middleware.SessionAuth(jwtSecret)

	// Any authenticated role.
	e.GET("/", a.Home, session)
	e.POST("/", a.Home, session)
	e.GET("/logout", a.Logout, session)

	// Access-control station.
	access := e.Group("/access", session, middleware.RequireRole(model.RoleAccess))
	access.GET("", a.AccessPage)
	access.POST("", a.AccessCheck)

	// Student booking pages.
	student := e.Group("/student", session, middleware.RequireRole(model.RoleStudent))
	student.GET("/", s.Dashboard)
	student.POST("/", s.Book)
	student.GET("/view_bookings/", s.ViewBookings)
	student.POST("/view_bookings/", s.ViewBookings)
	student.GET("/modify_bookings/", s.ModifyPage)
	student.POST("/modify_bookings/", s.Modify)
	student.GET("/reminders/", s.ListReminders)

	// Manager dashboards.
	manager := e.Group("/manager", session, middleware.RequireRole(model.RoleManager))
	manager.GET("/", m.Dashboard)
	manager.POST("/", m.Dashboard)
	manager.GET("/menu/", m.MenuPage)
	manager.POST("/menu/", m.PublishMenu)
	manager.GET("/bookings/", m.WeekBookings)

	// Accommodation account management.
	accom := e.Group("/accommodation", session, middleware.RequireRole(model.RoleAccommodation))
	accom.GET("/", acc.Dashboard)
	accom.GET("/delete/", acc.DeletePage)
	accom.POST("/delete/", acc.DeleteUser)
	accom.GET("/cards/", acc.ListCards)
	accom.POST("/cards/", acc.IssueCard)
}
