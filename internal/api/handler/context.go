package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadsmanager/leads-api/internal/core/domain"
)

// userContextKey is where the auth middleware stores the verified identity.
const userContextKey = "user"

// currentUser extracts the identity injected by the auth middleware. Its
// presence proves the middleware ran; a miss means the route was wired
// without auth and the request must be rejected.
func currentUser(c echo.Context) (domain.PublicUser, error) {
	user, ok := c.Get(userContextKey).(domain.PublicUser)
	if !ok {
		return domain.PublicUser{}, echo.NewHTTPError(http.StatusUnauthorized, "User does not exist")
	}
	return user, nil
}
