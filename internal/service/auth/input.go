package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/daybook-app/daybook/internal/domain"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
)

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (in *RegisterInput) Validate() error {
	var fields []domain.FieldError

	username := strings.TrimSpace(in.Username)
	switch {
	case username == "":
		fields = append(fields, domain.FieldError{Field: "username", Message: "is required"})
	case utf8.RuneCountInString(username) < minUsernameLen:
		fields = append(fields, domain.FieldError{Field: "username", Message: "is too short"})
	case utf8.RuneCountInString(username) > maxUsernameLen:
		fields = append(fields, domain.FieldError{Field: "username", Message: "is too long"})
	}

	switch {
	case in.Password == "":
		fields = append(fields, domain.FieldError{Field: "password", Message: "is required"})
	case len(in.Password) < minPasswordLen:
		fields = append(fields, domain.FieldError{Field: "password", Message: "is too short"})
	case len(in.Password) > maxPasswordLen:
		fields = append(fields, domain.FieldError{Field: "password", Message: "is too long"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (in *LoginInput) Validate() error {
	var fields []domain.FieldError

	if strings.TrimSpace(in.Username) == "" {
		fields = append(fields, domain.FieldError{Field: "username", Message: "is required"})
	}
	if in.Password == "" {
		fields = append(fields, domain.FieldError{Field: "password", Message: "is required"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}
