// Package backup implements JSON export and import of the full journal:
// entries, emotions, people and places in one document.
package backup

import (
	"context"
	"log/slog"
	"time"

	"github.com/daybook-app/daybook/internal/domain"
)

// Version is written into every exported document. Import accepts any
// document with the same major version.
const Version = "1.0.0"

// Document is the backup wire format. Ids are the exporting database's ids;
// import remaps them to freshly assigned ones.
type Document struct {
	Version   string          `json:"version"`
	CreatedAt time.Time       `json:"createdAt"`
	Entries   []EntryRecord   `json:"entries"`
	Emotions  []EmotionRecord `json:"emotions"`
	People    []PersonRecord  `json:"people"`
	Places    []PlaceRecord   `json:"places"`
}

type EmotionRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

type PersonRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PlaceRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// EntryRecord carries both the raw tag ids and denormalized snapshots of
// the emotion, place and people the entry referenced at export time. Import
// remaps through the ids; the snapshots keep the document readable on its
// own and are the authoritative people source.
type EntryRecord struct {
	ID         int64          `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	EmotionID  *int64         `json:"emotionId"`
	PlaceID    *int64         `json:"placeId"`
	CreatedAt  time.Time      `json:"createdAt"`
	IsFavorite bool           `json:"isFavorite"`
	Emotion    *EmotionRecord `json:"emotion,omitempty"`
	Place      *PlaceRecord   `json:"place,omitempty"`
	People     []PersonRecord `json:"people"`
	PeopleIDs  []int64        `json:"peopleIds"`
}

type EntryStore interface {
	List(ctx context.Context) ([]domain.Entry, error)
	ListPeopleByEntryIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.Person, error)
	Create(ctx context.Context, params domain.EntryCreateParams) (domain.Entry, error)
	ReplacePeople(ctx context.Context, entryID int64, personIDs []int64) error
}

type EmotionStore interface {
	List(ctx context.Context) ([]domain.Emotion, error)
	Create(ctx context.Context, name, emoji, color string) (domain.Emotion, error)
}

type PersonStore interface {
	List(ctx context.Context) ([]domain.Person, error)
	Create(ctx context.Context, name string) (domain.Person, error)
}

type PlaceStore interface {
	List(ctx context.Context) ([]domain.Place, error)
	Create(ctx context.Context, name, icon string) (domain.Place, error)
}

type Service struct {
	entries  EntryStore
	emotions EmotionStore
	people   PersonStore
	places   PlaceStore
	log      *slog.Logger

	now func() time.Time
}

func NewService(entries EntryStore, emotions EmotionStore, people PersonStore, places PlaceStore, log *slog.Logger) *Service {
	return &Service{
		entries:  entries,
		emotions: emotions,
		people:   people,
		places:   places,
		log:      log,
		now:      time.Now,
	}
}
