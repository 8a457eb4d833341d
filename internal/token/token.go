package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// LoginTTL is what the login handler passes explicitly.
	LoginTTL = 30 * time.Minute

	// DefaultTTL is the fallback applied when Issue is called with a
	// non-positive ttl. It intentionally differs from LoginTTL; both
	// values are inherited behavior.
	DefaultTTL = 15 * time.Minute
)

var ErrInvalidToken = errors.New("invalid token")

// Service signs and verifies bearer tokens with a single symmetric key.
type Service struct {
	Secret []byte
}

func New(secret []byte) *Service {
	return &Service{Secret: secret}
}

// Issue signs an HS256 token carrying the subject and an absolute expiry
// of now+ttl.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.Secret)
}

// Validate returns the subject of a token whose signature verifies and
// whose expiry has not passed. Every failure mode collapses into
// ErrInvalidToken; callers must not distinguish them. Expiry is strict:
// no leeway is configured.
func (s *Service) Validate(raw string) (string, error) {
	t, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !t.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := t.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
