// Package user provides PostgreSQL storage for accounts.
package user

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daybook-app/daybook/internal/adapter/postgres"
	"github.com/daybook-app/daybook/internal/domain"
)

const (
	createSQL = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at`

	getByIDSQL = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = $1`

	getByUsernameSQL = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1`
)

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, username, passwordHash string) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, createSQL, username, passwordHash))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", 0)
	}

	return u, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}

	return u, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", 0)
	}

	return u, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
