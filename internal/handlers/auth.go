package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/threatintel-platform/backend/internal/events"
	"github.com/threatintel-platform/backend/internal/hash"
	"github.com/threatintel-platform/backend/internal/middleware/auth"
	"github.com/threatintel-platform/backend/internal/models"
	"github.com/threatintel-platform/backend/internal/repo"
	"github.com/threatintel-platform/backend/internal/token"
)

// dummyHash is compared against when the username does not resolve, so the
// unknown-user path costs a bcrypt verification like the known-user path.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthHandler struct {
	Users    *repo.UserRepo
	Tokens   *token.Service
	Producer *events.Producer
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body")
	}

	user, ok := h.authenticateCredentials(req.Username, req.Password)
	if !ok {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect username or password")
	}

	signed, err := h.Tokens.Issue(user.Username, token.LoginTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not issue token")
	}

	publish(c, h.Producer, user.Username, map[string]any{
		"type":     "user_logged_in",
		"username": user.Username,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"token": signed,
		"user":  user,
	})
}

// authenticateCredentials keeps unknown-username and wrong-password
// indistinguishable to the caller.
func (h *AuthHandler) authenticateCredentials(username, password string) (models.User, bool) {
	cred, found := h.Users.Find(username)
	if !found {
		hash.CheckPassword(dummyHash, password)
		return models.User{}, false
	}
	if !hash.CheckPassword(cred.PasswordHash, password) {
		return models.User{}, false
	}
	return cred.Public(), true
}

func (h *AuthHandler) Profile(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	}
	return c.JSON(http.StatusOK, user)
}
