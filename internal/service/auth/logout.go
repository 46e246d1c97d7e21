package auth

import (
	"context"
	"errors"

	"github.com/daybook-app/daybook/internal/domain"
)

// Logout revokes the session behind the token. It is idempotent: an invalid
// token or an already-deleted session is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	sessionID, _, err := s.parseToken(token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil
		}
		return err
	}

	return s.sessions.Delete(ctx, sessionID)
}
