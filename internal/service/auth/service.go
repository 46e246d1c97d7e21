// Package auth implements account registration and cookie-session login.
// The cookie value is a signed token referencing a database session row, so
// logout and cleanup revoke access immediately regardless of token expiry.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, username, passwordHash string) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

type SessionRepo interface {
	Create(ctx context.Context, userID int64, expiresAt time.Time) (domain.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	users    UserRepo
	sessions SessionRepo

	secret     []byte
	sessionTTL time.Duration
	hashCost   int

	now func() time.Time
}

func NewService(users UserRepo, sessions SessionRepo, cfg config.AuthConfig) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		secret:     []byte(cfg.SessionSecret),
		sessionTTL: cfg.SessionTTL,
		hashCost:   cfg.PasswordHashCost,
		now:        time.Now,
	}
}
