package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/threatintel-platform/backend/internal/hash"
	"github.com/threatintel-platform/backend/internal/models"
	"github.com/threatintel-platform/backend/internal/repo"
	"github.com/threatintel-platform/backend/internal/token"
)

type testEnv struct {
	E          *echo.Echo
	Users      *repo.UserRepo
	Tokens     *token.Service
	Feeds      *repo.FeedRepo
	Indicators *repo.IndicatorRepo
	Reports    *repo.ReportRepo

	Auth      *AuthHandler
	Feed      *FeedHandler
	Indicator *IndicatorHandler
	Report    *ReportHandler
}

// newTestEnv seeds the standard datasets plus a third non-admin user so
// ownership checks can be exercised against someone who owns nothing.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	creds, err := repo.SeedUsers()
	require.NoError(t, err)
	viewerHash, err := hash.HashPassword("viewer")
	require.NoError(t, err)
	creds = append(creds, models.Credential{
		User:         models.User{Username: "viewer", Email: "viewer@example.com", Role: "viewer"},
		PasswordHash: viewerHash,
	})

	users, err := repo.NewUserRepo(creds)
	require.NoError(t, err)
	feeds, err := repo.NewFeedRepo(repo.SeedFeeds())
	require.NoError(t, err)
	indicators, err := repo.NewIndicatorRepo(repo.SeedIndicators())
	require.NoError(t, err)
	reports, err := repo.NewReportRepo(repo.SeedReports())
	require.NoError(t, err)

	tokens := token.New([]byte("test-secret"))

	return &testEnv{
		E:          echo.New(),
		Users:      users,
		Tokens:     tokens,
		Feeds:      feeds,
		Indicators: indicators,
		Reports:    reports,
		Auth:       &AuthHandler{Users: users, Tokens: tokens},
		Feed:       &FeedHandler{Feeds: feeds},
		Indicator:  &IndicatorHandler{Indicators: indicators},
		Report:     &ReportHandler{Reports: reports},
	}
}

func (env *testEnv) user(t *testing.T, username string) models.User {
	t.Helper()
	cred, ok := env.Users.Find(username)
	require.True(t, ok)
	return cred.Public()
}

// newJSONContext builds an echo context carrying an optional JSON body.
func (env *testEnv) newJSONContext(t *testing.T, method, path string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return env.E.NewContext(req, rec), rec
}

// asUser mimics what the auth guard does after a successful validation.
func asUser(c echo.Context, user models.User) {
	c.Set("user", user)
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %T", err)
	require.Equal(t, code, he.Code)
	return he
}
