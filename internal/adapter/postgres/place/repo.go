// Package place provides PostgreSQL storage for place tags.
package place

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daybook-app/daybook/internal/adapter/postgres"
	"github.com/daybook-app/daybook/internal/domain"
)

const (
	listSQL = `
		SELECT id, name, icon
		FROM places
		ORDER BY id`

	getByIDSQL = `
		SELECT id, name, icon
		FROM places
		WHERE id = $1`

	createSQL = `
		INSERT INTO places (name, icon)
		VALUES ($1, $2)
		RETURNING id, name, icon`

	deleteSQL = `DELETE FROM places WHERE id = $1`

	countSQL = `SELECT count(*) FROM places`
)

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]domain.Place, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "places", 0)
	}
	defer rows.Close()

	places := make([]domain.Place, 0)
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "places", 0)
	}

	return places, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Place, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPlace(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Place{}, postgres.MapError(err, "place", id)
	}

	return p, nil
}

// Create inserts a place. An empty icon falls back to the default pin.
func (r *Repo) Create(ctx context.Context, name, icon string) (domain.Place, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if icon == "" {
		icon = domain.DefaultPlaceIcon
	}

	p, err := scanPlace(q.QueryRow(ctx, createSQL, name, icon))
	if err != nil {
		return domain.Place{}, postgres.MapError(err, "place", 0)
	}

	return p, nil
}

func (r *Repo) Update(ctx context.Context, id int64, params domain.PlaceUpdateParams) (domain.Place, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Update("places").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, icon").
		PlaceholderFormat(sq.Dollar)

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	// the default pin applies on create only; updates store the icon verbatim
	if params.Icon != nil {
		b = b.Set("icon", *params.Icon)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return domain.Place{}, fmt.Errorf("build update query: %w", err)
	}

	p, err := scanPlace(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Place{}, postgres.MapError(err, "place", id)
	}

	return p, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "place", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("place %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "places", 0)
	}

	return n, nil
}

func scanPlace(row pgx.Row) (domain.Place, error) {
	var p domain.Place
	if err := row.Scan(&p.ID, &p.Name, &p.Icon); err != nil {
		return domain.Place{}, err
	}
	return p, nil
}
