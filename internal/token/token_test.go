package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := New([]byte("test-secret"))

	signed, err := svc.Issue("analyst", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	subject, err := svc.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "analyst", subject)
}

func TestIssue_DefaultTTLFallback(t *testing.T) {
	t.Parallel()

	svc := New([]byte("test-secret"))

	signed, err := svc.Issue("admin", 0)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return svc.Secret, nil
	})
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	svc := New([]byte("test-secret"))

	signed, err := svc.Issue("analyst", -time.Minute)
	// negative ttl falls back to the default, so build an expired token
	// by hand instead
	require.NoError(t, err)
	_, err = svc.Validate(signed)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "analyst",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	raw, err := expired.SignedString(svc.Secret)
	require.NoError(t, err)

	_, err = svc.Validate(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := New([]byte("secret-a")).Issue("analyst", time.Minute)
	require.NoError(t, err)

	_, err = New([]byte("secret-b")).Validate(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_MissingClaims(t *testing.T) {
	t.Parallel()

	svc := New([]byte("test-secret"))

	// no subject
	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	raw, err := noSub.SignedString(svc.Secret)
	require.NoError(t, err)
	_, err = svc.Validate(raw)
	require.ErrorIs(t, err, ErrInvalidToken)

	// no expiry
	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "analyst",
	})
	raw, err = noExp.SignedString(svc.Secret)
	require.NoError(t, err)
	_, err = svc.Validate(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	t.Parallel()

	_, err := New([]byte("test-secret")).Validate("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
