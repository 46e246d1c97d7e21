// Package settings provides PostgreSQL storage for per-user typography
// preferences.
package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daybook-app/daybook/internal/adapter/postgres"
	"github.com/daybook-app/daybook/internal/domain"
)

const (
	getSQL = `
		SELECT user_id, font_family, font_size, text_color, updated_at
		FROM user_settings
		WHERE user_id = $1`

	upsertSQL = `
		INSERT INTO user_settings (user_id, font_family, font_size, text_color, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id) DO UPDATE
		SET font_family = EXCLUDED.font_family,
		    font_size   = EXCLUDED.font_size,
		    text_color  = EXCLUDED.text_color,
		    updated_at  = now()
		RETURNING user_id, font_family, font_size, text_color, updated_at`
)

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the stored settings, or the defaults when the user has never
// saved any.
func (r *Repo) Get(ctx context.Context, userID int64) (domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSettings(q.QueryRow(ctx, getSQL, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultUserSettings(userID), nil
		}
		return domain.UserSettings{}, postgres.MapError(err, "settings", userID)
	}

	return s, nil
}

// Upsert writes the full settings row, creating it on first save.
func (r *Repo) Upsert(ctx context.Context, s domain.UserSettings) (domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	saved, err := scanSettings(q.QueryRow(ctx, upsertSQL,
		s.UserID, s.FontFamily, s.FontSize, s.TextColor))
	if err != nil {
		return domain.UserSettings{}, postgres.MapError(err, "settings", s.UserID)
	}

	return saved, nil
}

func scanSettings(row pgx.Row) (domain.UserSettings, error) {
	var s domain.UserSettings
	if err := row.Scan(&s.UserID, &s.FontFamily, &s.FontSize, &s.TextColor, &s.UpdatedAt); err != nil {
		return domain.UserSettings{}, err
	}
	return s, nil
}
