package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/threatintel-platform/backend/internal/models"
)

const userContextKey = "user"

func setUserContext(c echo.Context, user models.User) {
	c.Set(userContextKey, user)
}

// CurrentUser returns the user placed in the context by RequireAuth.
func CurrentUser(c echo.Context) (models.User, bool) {
	user, ok := c.Get(userContextKey).(models.User)
	return user, ok
}
