package auth

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/domain"
)

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// mintToken signs a token binding the session id and user id. The token's
// expiry matches the session row's, but the row is authoritative.
func (s *Service) mintToken(session domain.Session) (string, error) {
	claims := sessionClaims{
		SessionID: session.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(session.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return token, nil
}

// parseToken verifies the signature and returns the session id and user id.
// Any parse failure maps to ErrUnauthorized; callers never see jwt errors.
func (s *Service) parseToken(token string) (uuid.UUID, int64, error) {
	var claims sessionClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return uuid.Nil, 0, domain.ErrUnauthorized
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, 0, domain.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return uuid.Nil, 0, domain.ErrUnauthorized
	}

	return sessionID, userID, nil
}
