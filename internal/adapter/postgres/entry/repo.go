// Package entry provides PostgreSQL storage for journal entries and their
// people associations.
package entry

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
	selectColumns = `id, title, content, emotion_id, place_id, created_at, is_favorite`

	listSQL = `
		SELECT id, title, content, emotion_id, place_id, created_at, is_favorite
		FROM entries
		ORDER BY created_at DESC, id DESC`

	getByIDSQL = `
		SELECT id, title, content, emotion_id, place_id, created_at, is_favorite
		FROM entries
		WHERE id = $1`

	listByEmotionSQL = `
		SELECT id, title, content, emotion_id, place_id, created_at, is_favorite
		FROM entries
		WHERE emotion_id = $1
		ORDER BY created_at DESC, id DESC`

	listByPlaceSQL = `
		SELECT id, title, content, emotion_id, place_id, created_at, is_favorite
		FROM entries
		WHERE place_id = $1
		ORDER BY created_at DESC, id DESC`

	listFavoritesSQL = `
		SELECT id, title, content, emotion_id, place_id, created_at, is_favorite
		FROM entries
		WHERE is_favorite
		ORDER BY created_at DESC, id DESC`

	listByIDsSQL = `
		SELECT id, title, content, emotion_id, place_id, created_at, is_favorite
		FROM entries
		WHERE id = ANY($1)
		ORDER BY created_at DESC, id DESC`

	createSQL = `
		INSERT INTO entries (title, content, emotion_id, place_id, created_at, is_favorite)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()), $6)
		RETURNING id, title, content, emotion_id, place_id, created_at, is_favorite`

	deleteSQL = `DELETE FROM entries WHERE id = $1`

	toggleFavoriteSQL = `
		UPDATE entries
		SET is_favorite = NOT is_favorite
		WHERE id = $1
		RETURNING id, title, content, emotion_id, place_id, created_at, is_favorite`

	clearEmotionRefsSQL = `UPDATE entries SET emotion_id = NULL WHERE emotion_id = $1`
	clearPlaceRefsSQL   = `UPDATE entries SET place_id = NULL WHERE place_id = $1`

	listPeopleSQL = `
		SELECT p.id, p.name
		FROM entry_people ep
		JOIN people p ON p.id = ep.person_id
		WHERE ep.entry_id = $1
		ORDER BY p.id`

	listPeopleByEntryIDsSQL = `
		SELECT ep.entry_id, p.id, p.name
		FROM entry_people ep
		JOIN people p ON p.id = ep.person_id
		WHERE ep.entry_id = ANY($1)
		ORDER BY ep.entry_id, p.id`

	deletePeopleByEntrySQL = `DELETE FROM entry_people WHERE entry_id = $1`

	deletePeopleByPersonSQL = `DELETE FROM entry_people WHERE person_id = $1`

	// inserts only ids that exist in people; unknown ids are dropped silently
	insertPeopleSQL = `
		INSERT INTO entry_people (entry_id, person_id)
		SELECT $1, p.id
		FROM people p
		WHERE p.id = ANY($2)
		ON CONFLICT (entry_id, person_id) DO NOTHING`

	listEntryIDsByPersonSQL = `
		SELECT entry_id FROM entry_people WHERE person_id = $1`
)

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]domain.Entry, error) {
	return r.queryEntries(ctx, listSQL)
}

func (r *Repo) ListByEmotion(ctx context.Context, emotionID int64) ([]domain.Entry, error) {
	return r.queryEntries(ctx, listByEmotionSQL, emotionID)
}

func (r *Repo) ListByPlace(ctx context.Context, placeID int64) ([]domain.Entry, error) {
	return r.queryEntries(ctx, listByPlaceSQL, placeID)
}

func (r *Repo) ListFavorites(ctx context.Context) ([]domain.Entry, error) {
	return r.queryEntries(ctx, listFavoritesSQL)
}

func (r *Repo) ListByIDs(ctx context.Context, ids []int64) ([]domain.Entry, error) {
	if len(ids) == 0 {
		return []domain.Entry{}, nil
	}
	return r.queryEntries(ctx, listByIDsSQL, ids)
}

func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Entry{}, postgres.MapError(err, "entry", id)
	}

	return e, nil
}

func (r *Repo) Create(ctx context.Context, params domain.EntryCreateParams) (domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, createSQL,
		params.Title, params.Content, params.EmotionID, params.PlaceID,
		params.CreatedAt, params.IsFavorite))
	if err != nil {
		return domain.Entry{}, postgres.MapError(err, "entry", 0)
	}

	return e, nil
}

// Update applies only the fields set in params. Clear flags take precedence
// over the corresponding id pointers. created_at is never touched.
func (r *Repo) Update(ctx context.Context, id int64, params domain.EntryUpdateParams) (domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Update("entries").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + selectColumns).
		PlaceholderFormat(sq.Dollar)

	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Content != nil {
		b = b.Set("content", *params.Content)
	}
	switch {
	case params.ClearEmotion:
		b = b.Set("emotion_id", nil)
	case params.EmotionID != nil:
		b = b.Set("emotion_id", *params.EmotionID)
	}
	switch {
	case params.ClearPlace:
		b = b.Set("place_id", nil)
	case params.PlaceID != nil:
		b = b.Set("place_id", *params.PlaceID)
	}
	if params.IsFavorite != nil {
		b = b.Set("is_favorite", *params.IsFavorite)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return domain.Entry{}, fmt.Errorf("build update query: %w", err)
	}

	e, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Entry{}, postgres.MapError(err, "entry", id)
	}

	return e, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ToggleFavorite flips is_favorite in a single statement so concurrent
// toggles never lose an update.
func (r *Repo) ToggleFavorite(ctx context.Context, id int64) (domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, toggleFavoriteSQL, id))
	if err != nil {
		return domain.Entry{}, postgres.MapError(err, "entry", id)
	}

	return e, nil
}

// ClearEmotionRefs nulls out emotion_id on every entry referencing the
// emotion. Used when the emotion itself is deleted.
func (r *Repo) ClearEmotionRefs(ctx context.Context, emotionID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, clearEmotionRefsSQL, emotionID); err != nil {
		return postgres.MapError(err, "emotion", emotionID)
	}

	return nil
}

// ClearPlaceRefs nulls out place_id on every entry referencing the place.
func (r *Repo) ClearPlaceRefs(ctx context.Context, placeID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, clearPlaceRefsSQL, placeID); err != nil {
		return postgres.MapError(err, "place", placeID)
	}

	return nil
}

// ReplacePeople replaces the entry's people associations with exactly the
// given set. Ids that do not exist in people are dropped without error.
// Callers wanting atomicity run this inside a transaction.
func (r *Repo) ReplacePeople(ctx context.Context, entryID int64, personIDs []int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deletePeopleByEntrySQL, entryID); err != nil {
		return postgres.MapError(err, "entry", entryID)
	}

	if len(personIDs) == 0 {
		return nil
	}

	if _, err := q.Exec(ctx, insertPeopleSQL, entryID, personIDs); err != nil {
		return postgres.MapError(err, "entry", entryID)
	}

	return nil
}

func (r *Repo) ListPeople(ctx context.Context, entryID int64) ([]domain.Person, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listPeopleSQL, entryID)
	if err != nil {
		return nil, postgres.MapError(err, "entry", entryID)
	}
	defer rows.Close()

	people := make([]domain.Person, 0)
	for rows.Next() {
		var p domain.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "entry", entryID)
	}

	return people, nil
}

// ListPeopleByEntryIDs loads people for many entries in one query, keyed by
// entry id. Entries without people are absent from the map.
func (r *Repo) ListPeopleByEntryIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.Person, error) {
	if len(entryIDs) == 0 {
		return map[int64][]domain.Person{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listPeopleByEntryIDsSQL, entryIDs)
	if err != nil {
		return nil, postgres.MapError(err, "entries", 0)
	}
	defer rows.Close()

	byEntry := make(map[int64][]domain.Person)
	for rows.Next() {
		var entryID int64
		var p domain.Person
		if err := rows.Scan(&entryID, &p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan entry person: %w", err)
		}
		byEntry[entryID] = append(byEntry[entryID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "entries", 0)
	}

	return byEntry, nil
}

// DeletePeopleByEntry removes all associations for an entry.
func (r *Repo) DeletePeopleByEntry(ctx context.Context, entryID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deletePeopleByEntrySQL, entryID); err != nil {
		return postgres.MapError(err, "entry", entryID)
	}

	return nil
}

// DeletePeopleByPerson removes all associations for a person. Used when the
// person itself is deleted.
func (r *Repo) DeletePeopleByPerson(ctx context.Context, personID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deletePeopleByPersonSQL, personID); err != nil {
		return postgres.MapError(err, "person", personID)
	}

	return nil
}

// ListEntryIDsByPerson returns the ids of entries tagged with the person.
func (r *Repo) ListEntryIDsByPerson(ctx context.Context, personID int64) ([]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listEntryIDsByPersonSQL, personID)
	if err != nil {
		return nil, postgres.MapError(err, "person", personID)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan entry id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "person", personID)
	}

	return ids, nil
}

func (r *Repo) queryEntries(ctx context.Context, sql string, args ...any) ([]domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "entries", 0)
	}
	defer rows.Close()

	entries := make([]domain.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "entries", 0)
	}

	return entries, nil
}

func scanEntry(row pgx.Row) (domain.Entry, error) {
	var e domain.Entry
	if err := row.Scan(&e.ID, &e.Title, &e.Content, &e.EmotionID, &e.PlaceID,
		&e.CreatedAt, &e.IsFavorite); err != nil {
		return domain.Entry{}, err
	}
	return e, nil
}
