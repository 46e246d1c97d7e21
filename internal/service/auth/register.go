package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/daybook-app/daybook/internal/domain"
)

// Register creates an account and logs it in, returning the user and a
// session token for the cookie. A taken username surfaces as a validation
// error on the username field wrapped around ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, string, error) {
	if err := in.Validate(); err != nil {
		return domain.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, strings.TrimSpace(in.Username), string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.User{}, "", fmt.Errorf("username is taken: %w", domain.ErrAlreadyExists)
		}
		return domain.User{}, "", err
	}

	token, err := s.startSession(ctx, user.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *Service) startSession(ctx context.Context, userID int64) (string, error) {
	session, err := s.sessions.Create(ctx, userID, s.now().Add(s.sessionTTL))
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return s.mintToken(session)
}
