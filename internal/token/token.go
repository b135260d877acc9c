// Package token issues and verifies the signed bearer tokens that back
// sessions. Tokens are stateless: there is no server-side revocation, a
// token stays valid until its expiry.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/moscow89er/mesto-api/internal/domain"
)

const defaultTTL = 7 * 24 * time.Hour

// Service signs and parses HS256 JWTs. The signing secret is injected once
// at startup and read-only afterwards.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret []byte) *Service {
	return &Service{secret: secret, ttl: defaultTTL}
}

// Issue returns a signed token carrying the user id as subject.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses raw and returns the user id it was issued for. Any invalid
// input (bad signature, wrong secret, expired, malformed) yields
// domain.ErrTokenInvalid; callers never see parser internals.
func (s *Service) Verify(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", domain.ErrTokenInvalid
	}

	sub, err := tok.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrTokenInvalid
	}
	return sub, nil
}
