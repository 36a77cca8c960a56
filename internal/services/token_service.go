package services

import (
	"fmt"
	"time"

	apperrors "github.com/emarifer/go-gin-htmx-todoapp/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of an issued identity token. There is no
// refresh mechanism; expiry forces a new login.
const TokenTTL = 60 * time.Minute

// TokenService issues and verifies signed, time-bound identity tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time // substituted in tests
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Issue signs a compact HS256 token asserting the subject's identity
// for the next 60 minutes.
func (s *TokenService) Issue(subject string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token string and returns its claims. A malformed
// token, a bad signature and an expired token all yield the same
// InvalidToken error.
func (s *TokenService) Verify(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
