package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/threatintel-platform/backend/internal/models"
	"github.com/threatintel-platform/backend/internal/repo"
	"github.com/threatintel-platform/backend/internal/token"
)

// ErrUnauthorized covers every guard failure: missing header, bad token,
// expired token, unknown subject. Collapsing them is intentional; the
// client must not learn which check failed.
var ErrUnauthorized = errors.New("could not validate credentials")

type Guard struct {
	Tokens *token.Service
	Users  *repo.UserRepo
}

// RequireAuth rejects the request with a uniform 401 unless it carries a
// valid bearer token resolving to a seeded user.
func (g *Guard) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := g.Authenticate(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
		}
		setUserContext(c, user)
		return next(c)
	}
}

// Authenticate resolves an Authorization header value to a public user.
func (g *Guard) Authenticate(header string) (models.User, error) {
	raw, ok := bearerToken(header)
	if !ok {
		return models.User{}, ErrUnauthorized
	}

	subject, err := g.Tokens.Validate(raw)
	if err != nil {
		return models.User{}, ErrUnauthorized
	}

	cred, found := g.Users.Find(subject)
	if !found {
		return models.User{}, ErrUnauthorized
	}

	return cred.Public(), nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
