package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/leadsmanager/leads-api/internal/core/ports"
)

// userContextKey must match the key the handler package reads.
const userContextKey = "user"

// Auth verifies the bearer token, resolves it to a live user row, and injects
// the public identity into the request context. Every failure — missing or
// malformed header, bad signature, expired token, vanished user — yields the
// same 401 response.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "User does not exist")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "User does not exist")
			}

			user, err := authService.CurrentUser(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "User does not exist")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}
