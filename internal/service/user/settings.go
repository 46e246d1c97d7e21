package user

import (
	"context"

	"github.com/daybook-app/daybook/internal/domain"
)

// UpdateSettingsInput is a partial settings change. Nil fields keep their
// current value.
type UpdateSettingsInput struct {
	FontFamily *string `json:"fontFamily"`
	FontSize   *string `json:"fontSize"`
	TextColor  *string `json:"textColor"`
}

func (in *UpdateSettingsInput) Validate() error {
	var fields []domain.FieldError

	if in.FontFamily == nil && in.FontSize == nil && in.TextColor == nil {
		return domain.NewValidationError("body", "at least one field must be provided")
	}

	if in.FontFamily != nil && !domain.IsValidFontFamily(*in.FontFamily) {
		fields = append(fields, domain.FieldError{Field: "fontFamily", Message: "is not a supported font"})
	}
	if in.FontSize != nil && !domain.IsValidFontSize(*in.FontSize) {
		fields = append(fields, domain.FieldError{Field: "fontSize", Message: "is not a supported size"})
	}
	if in.TextColor != nil && !domain.IsValidTextColor(*in.TextColor) {
		fields = append(fields, domain.FieldError{Field: "textColor", Message: "is not a supported color"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// GetSettings returns the user's typography settings, falling back to the
// defaults when none were ever saved.
func (s *Service) GetSettings(ctx context.Context, userID int64) (domain.UserSettings, error) {
	return s.settings.Get(ctx, userID)
}

// UpdateSettings merges the change onto the current settings and persists
// the result.
func (s *Service) UpdateSettings(ctx context.Context, userID int64, in UpdateSettingsInput) (domain.UserSettings, error) {
	if err := in.Validate(); err != nil {
		return domain.UserSettings{}, err
	}

	current, err := s.settings.Get(ctx, userID)
	if err != nil {
		return domain.UserSettings{}, err
	}

	if in.FontFamily != nil {
		current.FontFamily = *in.FontFamily
	}
	if in.FontSize != nil {
		current.FontSize = *in.FontSize
	}
	if in.TextColor != nil {
		current.TextColor = *in.TextColor
	}

	return s.settings.Upsert(ctx, current)
}
