package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/daybook-app/daybook/internal/domain"
)

// Login verifies the credentials and starts a session. An unknown username
// and a wrong password both return plain ErrUnauthorized so the response
// does not reveal which part failed.
func (s *Service) Login(ctx context.Context, in LoginInput) (domain.User, string, error) {
	if err := in.Validate(); err != nil {
		return domain.User{}, "", err
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", domain.ErrUnauthorized
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return domain.User{}, "", domain.ErrUnauthorized
	}

	token, err := s.startSession(ctx, user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("start session: %w", err)
	}

	return user, token, nil
}
