// Package person provides PostgreSQL storage for people tags.
package person

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
		SELECT id, name
		FROM people
		ORDER BY id`

	getByIDSQL = `
		SELECT id, name
		FROM people
		WHERE id = $1`

	createSQL = `
		INSERT INTO people (name)
		VALUES ($1)
		RETURNING id, name`

	deleteSQL = `DELETE FROM people WHERE id = $1`
)

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]domain.Person, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "people", 0)
	}
	defer rows.Close()

	people := make([]domain.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "people", 0)
	}

	return people, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Person, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPerson(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Person{}, postgres.MapError(err, "person", id)
	}

	return p, nil
}

func (r *Repo) Create(ctx context.Context, name string) (domain.Person, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPerson(q.QueryRow(ctx, createSQL, name))
	if err != nil {
		return domain.Person{}, postgres.MapError(err, "person", 0)
	}

	return p, nil
}

func (r *Repo) Update(ctx context.Context, id int64, params domain.PersonUpdateParams) (domain.Person, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Update("people").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name").
		PlaceholderFormat(sq.Dollar)

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return domain.Person{}, fmt.Errorf("build update query: %w", err)
	}

	p, err := scanPerson(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Person{}, postgres.MapError(err, "person", id)
	}

	return p, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "person", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("person %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanPerson(row pgx.Row) (domain.Person, error) {
	var p domain.Person
	if err := row.Scan(&p.ID, &p.Name); err != nil {
		return domain.Person{}, err
	}
	return p, nil
}
