// Package session provides PostgreSQL storage for login sessions.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daybook-app/daybook/internal/adapter/postgres"
	"github.com/daybook-app/daybook/internal/domain"
)

const (
	createSQL = `
		INSERT INTO sessions (id, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, expires_at, created_at`

	getByIDSQL = `
		SELECT id, user_id, expires_at, created_at
		FROM sessions
		WHERE id = $1`

	deleteSQL = `DELETE FROM sessions WHERE id = $1`

	deleteByUserSQL = `DELETE FROM sessions WHERE user_id = $1`

	deleteExpiredSQL = `DELETE FROM sessions WHERE expires_at < now()`
)

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, userID int64, expiresAt time.Time) (domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(q.QueryRow(ctx, createSQL, uuid.New(), userID, expiresAt))
	if err != nil {
		return domain.Session{}, postgres.MapError(err, "session", userID)
	}

	return s, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Session{}, postgres.MapError(err, "session", 0)
	}

	return s, nil
}

// Delete removes a session. Deleting a session that no longer exists is not
// an error; logout must be idempotent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteSQL, id); err != nil {
		return postgres.MapError(err, "session", 0)
	}

	return nil
}

// DeleteByUser removes every session belonging to the user.
func (r *Repo) DeleteByUser(ctx context.Context, userID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteByUserSQL, userID); err != nil {
		return postgres.MapError(err, "session", userID)
	}

	return nil
}

// DeleteExpired removes sessions past their expiry and reports how many.
func (r *Repo) DeleteExpired(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, postgres.MapError(err, "sessions", 0)
	}

	return tag.RowsAffected(), nil
}

func scanSession(row pgx.Row) (domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.ID, &s.UserID, &s.ExpiresAt, &s.CreatedAt); err != nil {
		return domain.Session{}, err
	}
	return s, nil
}
