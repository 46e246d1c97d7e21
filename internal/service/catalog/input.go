package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/daybook-app/daybook/internal/domain"
)

const (
	maxNameLen  = 100
	maxEmojiLen = 16
	maxColorLen = 32
	maxIconLen  = 16
)

type CreateEmotionInput struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

func (in *CreateEmotionInput) Validate() error {
	var fields []domain.FieldError

	fields = appendNameErrors(fields, in.Name, true)

	if strings.TrimSpace(in.Emoji) == "" {
		fields = append(fields, domain.FieldError{Field: "emoji", Message: "is required"})
	} else if utf8.RuneCountInString(in.Emoji) > maxEmojiLen {
		fields = append(fields, domain.FieldError{Field: "emoji", Message: "is too long"})
	}

	if strings.TrimSpace(in.Color) == "" {
		fields = append(fields, domain.FieldError{Field: "color", Message: "is required"})
	} else if len(in.Color) > maxColorLen {
		fields = append(fields, domain.FieldError{Field: "color", Message: "is too long"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

type UpdateEmotionInput struct {
	Name  *string `json:"name"`
	Emoji *string `json:"emoji"`
	Color *string `json:"color"`
}

func (in *UpdateEmotionInput) Validate() error {
	var fields []domain.FieldError

	if in.Name == nil && in.Emoji == nil && in.Color == nil {
		return domain.NewValidationError("body", "at least one field must be provided")
	}

	if in.Name != nil {
		fields = appendNameErrors(fields, *in.Name, true)
	}
	if in.Emoji != nil {
		if strings.TrimSpace(*in.Emoji) == "" {
			fields = append(fields, domain.FieldError{Field: "emoji", Message: "must not be empty"})
		} else if utf8.RuneCountInString(*in.Emoji) > maxEmojiLen {
			fields = append(fields, domain.FieldError{Field: "emoji", Message: "is too long"})
		}
	}
	if in.Color != nil {
		if strings.TrimSpace(*in.Color) == "" {
			fields = append(fields, domain.FieldError{Field: "color", Message: "must not be empty"})
		} else if len(*in.Color) > maxColorLen {
			fields = append(fields, domain.FieldError{Field: "color", Message: "is too long"})
		}
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

func (in *UpdateEmotionInput) Params() domain.EmotionUpdateParams {
	return domain.EmotionUpdateParams{Name: in.Name, Emoji: in.Emoji, Color: in.Color}
}

type CreatePersonInput struct {
	Name string `json:"name"`
}

func (in *CreatePersonInput) Validate() error {
	fields := appendNameErrors(nil, in.Name, true)
	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

type UpdatePersonInput struct {
	Name *string `json:"name"`
}

func (in *UpdatePersonInput) Validate() error {
	if in.Name == nil {
		return domain.NewValidationError("name", "is required")
	}
	fields := appendNameErrors(nil, *in.Name, true)
	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

func (in *UpdatePersonInput) Params() domain.PersonUpdateParams {
	return domain.PersonUpdateParams{Name: in.Name}
}

type CreatePlaceInput struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (in *CreatePlaceInput) Validate() error {
	fields := appendNameErrors(nil, in.Name, true)

	if utf8.RuneCountInString(in.Icon) > maxIconLen {
		fields = append(fields, domain.FieldError{Field: "icon", Message: "is too long"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

type UpdatePlaceInput struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

func (in *UpdatePlaceInput) Validate() error {
	var fields []domain.FieldError

	if in.Name == nil && in.Icon == nil {
		return domain.NewValidationError("body", "at least one field must be provided")
	}

	if in.Name != nil {
		fields = appendNameErrors(fields, *in.Name, true)
	}
	if in.Icon != nil && utf8.RuneCountInString(*in.Icon) > maxIconLen {
		fields = append(fields, domain.FieldError{Field: "icon", Message: "is too long"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

func (in *UpdatePlaceInput) Params() domain.PlaceUpdateParams {
	return domain.PlaceUpdateParams{Name: in.Name, Icon: in.Icon}
}

func appendNameErrors(fields []domain.FieldError, name string, required bool) []domain.FieldError {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		if required {
			fields = append(fields, domain.FieldError{Field: "name", Message: "is required"})
		}
		return fields
	}
	if utf8.RuneCountInString(trimmed) > maxNameLen {
		fields = append(fields, domain.FieldError{Field: "name", Message: "is too long"})
	}
	return fields
}
