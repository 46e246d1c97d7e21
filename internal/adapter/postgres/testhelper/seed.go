package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daybook-app/daybook/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting
// test data. The container is shared across parallel tests, so seeded rows
// must never collide by name.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username. The password hash is a
// placeholder; tests exercising real password checks hash their own.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	var u domain.User
	err := pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, username, password_hash, created_at`,
		"testuser-"+uniqueSuffix(), "not-a-real-hash",
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// SeedEmotion creates an emotion with a unique name.
func SeedEmotion(t *testing.T, pool *pgxpool.Pool) domain.Emotion {
	t.Helper()
	ctx := context.Background()

	var e domain.Emotion
	err := pool.QueryRow(ctx,
		`INSERT INTO emotions (name, emoji, color)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, emoji, color`,
		"Emotion-"+uniqueSuffix(), "😊", "#818CF8",
	).Scan(&e.ID, &e.Name, &e.Emoji, &e.Color)
	if err != nil {
		t.Fatalf("testhelper: SeedEmotion: %v", err)
	}

	return e
}

// SeedPerson creates a person with a unique name.
func SeedPerson(t *testing.T, pool *pgxpool.Pool) domain.Person {
	t.Helper()
	ctx := context.Background()

	var p domain.Person
	err := pool.QueryRow(ctx,
		`INSERT INTO people (name) VALUES ($1) RETURNING id, name`,
		"Person-"+uniqueSuffix(),
	).Scan(&p.ID, &p.Name)
	if err != nil {
		t.Fatalf("testhelper: SeedPerson: %v", err)
	}

	return p
}

// SeedPlace creates a place with a unique name.
func SeedPlace(t *testing.T, pool *pgxpool.Pool) domain.Place {
	t.Helper()
	ctx := context.Background()

	var p domain.Place
	err := pool.QueryRow(ctx,
		`INSERT INTO places (name, icon) VALUES ($1, $2) RETURNING id, name, icon`,
		"Place-"+uniqueSuffix(), "🏠",
	).Scan(&p.ID, &p.Name, &p.Icon)
	if err != nil {
		t.Fatalf("testhelper: SeedPlace: %v", err)
	}

	return p
}

// SeedEntry creates an entry with the given tag references (either may be
// nil). created_at is set explicitly so ordering assertions are stable.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, emotionID, placeID *int64) domain.Entry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	var e domain.Entry
	err := pool.QueryRow(ctx,
		`INSERT INTO entries (title, content, emotion_id, place_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, title, content, emotion_id, place_id, created_at, is_favorite`,
		"Entry "+suffix, "Content "+suffix, emotionID, placeID, createdAt,
	).Scan(&e.ID, &e.Title, &e.Content, &e.EmotionID, &e.PlaceID, &e.CreatedAt, &e.IsFavorite)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return e
}

// AttachPerson links a person to an entry directly, bypassing the repo.
func AttachPerson(t *testing.T, pool *pgxpool.Pool, entryID, personID int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO entry_people (entry_id, person_id) VALUES ($1, $2)`,
		entryID, personID,
	)
	if err != nil {
		t.Fatalf("testhelper: AttachPerson: %v", err)
	}
}
