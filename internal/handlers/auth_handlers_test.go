package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	c, rec := env.newJSONContext(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "analyst",
		"password": "analyst",
	})

	require.NoError(t, env.Auth.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "analyst", resp.User.ID)
	assert.Equal(t, "analyst", resp.User.Username)
	assert.Equal(t, "analyst@example.com", resp.User.Email)
	assert.Equal(t, "analyst", resp.User.Role)

	// the issued token resolves back to the same subject
	subject, err := env.Tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "analyst", subject)

	// the hash never leaks
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestLogin_FailuresAreUniform(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	cases := map[string]map[string]string{
		"wrong password":   {"username": "analyst", "password": "nope"},
		"unknown username": {"username": "nobody", "password": "analyst"},
	}

	var messages []interface{}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := env.newJSONContext(t, http.MethodPost, "/api/auth/login", body)
			err := env.Auth.Login(c)
			he := requireHTTPError(t, err, http.StatusUnauthorized)
			assert.Equal(t, "Incorrect username or password", he.Message)
			assert.Equal(t, "Bearer", c.Response().Header().Get(echo.HeaderWWWAuthenticate))
			messages = append(messages, he.Message)
		})
	}

	// both rejection paths produce byte-identical messages
	require.Len(t, messages, 2)
	assert.Equal(t, messages[0], messages[1])
}

func TestProfile_ReturnsCurrentUser(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	c, rec := env.newJSONContext(t, http.MethodGet, "/api/auth/profile", nil)
	asUser(c, env.user(t, "admin"))

	require.NoError(t, env.Auth.Profile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var user map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "admin", user["username"])
	assert.Equal(t, "admin", user["role"])
}
