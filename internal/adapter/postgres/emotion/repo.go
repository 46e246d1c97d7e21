// Package emotion provides PostgreSQL storage for emotion tags.
package emotion

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
		SELECT id, name, emoji, color
		FROM emotions
		ORDER BY id`

	getByIDSQL = `
		SELECT id, name, emoji, color
		FROM emotions
		WHERE id = $1`

	createSQL = `
		INSERT INTO emotions (name, emoji, color)
		VALUES ($1, $2, $3)
		RETURNING id, name, emoji, color`

	deleteSQL = `DELETE FROM emotions WHERE id = $1`

	countSQL = `SELECT count(*) FROM emotions`
)

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]domain.Emotion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "emotions", 0)
	}
	defer rows.Close()

	emotions := make([]domain.Emotion, 0)
	for rows.Next() {
		e, err := scanEmotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan emotion: %w", err)
		}
		emotions = append(emotions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "emotions", 0)
	}

	return emotions, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Emotion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEmotion(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Emotion{}, postgres.MapError(err, "emotion", id)
	}

	return e, nil
}

func (r *Repo) Create(ctx context.Context, name, emoji, color string) (domain.Emotion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEmotion(q.QueryRow(ctx, createSQL, name, emoji, color))
	if err != nil {
		return domain.Emotion{}, postgres.MapError(err, "emotion", 0)
	}

	return e, nil
}

// Update applies only the fields set in params. Returns the updated row.
func (r *Repo) Update(ctx context.Context, id int64, params domain.EmotionUpdateParams) (domain.Emotion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Update("emotions").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, emoji, color").
		PlaceholderFormat(sq.Dollar)

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Emoji != nil {
		b = b.Set("emoji", *params.Emoji)
	}
	if params.Color != nil {
		b = b.Set("color", *params.Color)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return domain.Emotion{}, fmt.Errorf("build update query: %w", err)
	}

	e, err := scanEmotion(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Emotion{}, postgres.MapError(err, "emotion", id)
	}

	return e, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "emotion", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("emotion %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Count returns the total number of emotions. Used by seeding to decide
// whether defaults are needed.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "emotions", 0)
	}

	return n, nil
}

func scanEmotion(row pgx.Row) (domain.Emotion, error) {
	var e domain.Emotion
	if err := row.Scan(&e.ID, &e.Name, &e.Emoji, &e.Color); err != nil {
		return domain.Emotion{}, err
	}
	return e, nil
}
