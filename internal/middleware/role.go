package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/obakeng/academy-meals/internal/model"
)

// RequireRole enforces that the session role is one of the given roles.
// It assumes SessionAuth has already stored the role claim in the context;
// a missing or unlisted role aborts the request with 403.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r.String()] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
