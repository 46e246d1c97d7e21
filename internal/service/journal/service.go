// Package journal implements entry CRUD, favorites and filtered listings,
// returning entries enriched with their emotion, place and people.
package journal

import (
	"context"

	"github.com/daybook-app/daybook/internal/domain"
)

type EntryRepo interface {
	List(ctx context.Context) ([]domain.Entry, error)
	ListByEmotion(ctx context.Context, emotionID int64) ([]domain.Entry, error)
	ListByPlace(ctx context.Context, placeID int64) ([]domain.Entry, error)
	ListFavorites(ctx context.Context) ([]domain.Entry, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Entry, error)
	GetByID(ctx context.Context, id int64) (domain.Entry, error)
	Create(ctx context.Context, params domain.EntryCreateParams) (domain.Entry, error)
	Update(ctx context.Context, id int64, params domain.EntryUpdateParams) (domain.Entry, error)
	Delete(ctx context.Context, id int64) error
	ToggleFavorite(ctx context.Context, id int64) (domain.Entry, error)
	ReplacePeople(ctx context.Context, entryID int64, personIDs []int64) error
	ListPeople(ctx context.Context, entryID int64) ([]domain.Person, error)
	ListPeopleByEntryIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.Person, error)
	DeletePeopleByEntry(ctx context.Context, entryID int64) error
	ListEntryIDsByPerson(ctx context.Context, personID int64) ([]int64, error)
}

type EmotionReader interface {
	List(ctx context.Context) ([]domain.Emotion, error)
}

type PlaceReader interface {
	List(ctx context.Context) ([]domain.Place, error)
}

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	entries  EntryRepo
	emotions EmotionReader
	places   PlaceReader
	tx       TxManager
}

func NewService(entries EntryRepo, emotions EmotionReader, places PlaceReader, tx TxManager) *Service {
	return &Service{
		entries:  entries,
		emotions: emotions,
		places:   places,
		tx:       tx,
	}
}
