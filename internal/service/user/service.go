// Package user implements per-user typography preferences.
package user

import (
	"context"

	"github.com/daybook-app/daybook/internal/domain"
)

type SettingsRepo interface {
	Get(ctx context.Context, userID int64) (domain.UserSettings, error)
	Upsert(ctx context.Context, s domain.UserSettings) (domain.UserSettings, error)
}

type Service struct {
	settings SettingsRepo
}

func NewService(settings SettingsRepo) *Service {
	return &Service{settings: settings}
}
