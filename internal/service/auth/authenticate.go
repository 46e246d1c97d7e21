package auth

import (
	"context"
	"errors"

	"github.com/daybook-app/daybook/internal/domain"
)

// Authenticate resolves a session token to its user. The session row must
// exist, belong to the token's user and not be expired; any failure is
// ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (domain.User, error) {
	sessionID, userID, err := s.parseToken(token)
	if err != nil {
		return domain.User{}, err
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, err
	}

	if session.UserID != userID || session.IsExpired(s.now()) {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, err
	}

	return user, nil
}

// CurrentUser loads the user for an already-authenticated request.
func (s *Service) CurrentUser(ctx context.Context, userID int64) (domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
