// Package catalog manages the three tag vocabularies (emotions, people,
// places) that journal entries reference. Tag deletion cascades to entries
// at the application level, inside a transaction.
package catalog

import (
	"context"

	"github.com/daybook-app/daybook/internal/domain"
)

type EmotionRepo interface {
	List(ctx context.Context) ([]domain.Emotion, error)
	GetByID(ctx context.Context, id int64) (domain.Emotion, error)
	Create(ctx context.Context, name, emoji, color string) (domain.Emotion, error)
	Update(ctx context.Context, id int64, params domain.EmotionUpdateParams) (domain.Emotion, error)
	Delete(ctx context.Context, id int64) error
}

type PersonRepo interface {
	List(ctx context.Context) ([]domain.Person, error)
	GetByID(ctx context.Context, id int64) (domain.Person, error)
	Create(ctx context.Context, name string) (domain.Person, error)
	Update(ctx context.Context, id int64, params domain.PersonUpdateParams) (domain.Person, error)
	Delete(ctx context.Context, id int64) error
}

type PlaceRepo interface {
	List(ctx context.Context) ([]domain.Place, error)
	GetByID(ctx context.Context, id int64) (domain.Place, error)
	Create(ctx context.Context, name, icon string) (domain.Place, error)
	Update(ctx context.Context, id int64, params domain.PlaceUpdateParams) (domain.Place, error)
	Delete(ctx context.Context, id int64) error
}

// EntryRefs is the slice of the entry store the cascades need.
type EntryRefs interface {
	ClearEmotionRefs(ctx context.Context, emotionID int64) error
	ClearPlaceRefs(ctx context.Context, placeID int64) error
	DeletePeopleByPerson(ctx context.Context, personID int64) error
}

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	emotions EmotionRepo
	people   PersonRepo
	places   PlaceRepo
	entries  EntryRefs
	tx       TxManager
}

func NewService(emotions EmotionRepo, people PersonRepo, places PlaceRepo, entries EntryRefs, tx TxManager) *Service {
	return &Service{
		emotions: emotions,
		people:   people,
		places:   places,
		entries:  entries,
		tx:       tx,
	}
}
