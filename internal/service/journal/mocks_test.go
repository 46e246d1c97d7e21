package journal

import (
	"context"

	"github.com/daybook-app/daybook/internal/domain"
)

var (
	_ EntryRepo     = &entryRepoMock{}
	_ EmotionReader = &emotionReaderMock{}
	_ PlaceReader   = &placeReaderMock{}
	_ TxManager     = &txManagerMock{}
)

// entryRepoMock implements EntryRepo with func fields. Unset read funcs
// return empty results; unset write funcs panic so tests fail loudly.
type entryRepoMock struct {
	ListFunc                 func(ctx context.Context) ([]domain.Entry, error)
	ListByEmotionFunc        func(ctx context.Context, emotionID int64) ([]domain.Entry, error)
	ListByPlaceFunc          func(ctx context.Context, placeID int64) ([]domain.Entry, error)
	ListFavoritesFunc        func(ctx context.Context) ([]domain.Entry, error)
	ListByIDsFunc            func(ctx context.Context, ids []int64) ([]domain.Entry, error)
	GetByIDFunc              func(ctx context.Context, id int64) (domain.Entry, error)
	CreateFunc               func(ctx context.Context, params domain.EntryCreateParams) (domain.Entry, error)
	UpdateFunc               func(ctx context.Context, id int64, params domain.EntryUpdateParams) (domain.Entry, error)
	DeleteFunc               func(ctx context.Context, id int64) error
	ToggleFavoriteFunc       func(ctx context.Context, id int64) (domain.Entry, error)
	ReplacePeopleFunc        func(ctx context.Context, entryID int64, personIDs []int64) error
	ListPeopleFunc           func(ctx context.Context, entryID int64) ([]domain.Person, error)
	ListPeopleByEntryIDsFunc func(ctx context.Context, entryIDs []int64) (map[int64][]domain.Person, error)
	DeletePeopleByEntryFunc  func(ctx context.Context, entryID int64) error
	ListEntryIDsByPersonFunc func(ctx context.Context, personID int64) ([]int64, error)

	replacePeopleCalls []struct {
		EntryID   int64
		PersonIDs []int64
	}
	deletePeopleByEntryCalls []int64
	updateCalls              []domain.EntryUpdateParams
	deleteCalls              []int64
}

func (m *entryRepoMock) List(ctx context.Context) ([]domain.Entry, error) {
	if m.ListFunc == nil {
		return []domain.Entry{}, nil
	}
	return m.ListFunc(ctx)
}

func (m *entryRepoMock) ListByEmotion(ctx context.Context, emotionID int64) ([]domain.Entry, error) {
	return m.ListByEmotionFunc(ctx, emotionID)
}

func (m *entryRepoMock) ListByPlace(ctx context.Context, placeID int64) ([]domain.Entry, error) {
	return m.ListByPlaceFunc(ctx, placeID)
}

func (m *entryRepoMock) ListFavorites(ctx context.Context) ([]domain.Entry, error) {
	return m.ListFavoritesFunc(ctx)
}

func (m *entryRepoMock) ListByIDs(ctx context.Context, ids []int64) ([]domain.Entry, error) {
	return m.ListByIDsFunc(ctx, ids)
}

func (m *entryRepoMock) GetByID(ctx context.Context, id int64) (domain.Entry, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *entryRepoMock) Create(ctx context.Context, params domain.EntryCreateParams) (domain.Entry, error) {
	return m.CreateFunc(ctx, params)
}

func (m *entryRepoMock) Update(ctx context.Context, id int64, params domain.EntryUpdateParams) (domain.Entry, error) {
	m.updateCalls = append(m.updateCalls, params)
	return m.UpdateFunc(ctx, id, params)
}

func (m *entryRepoMock) Delete(ctx context.Context, id int64) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFunc(ctx, id)
}

func (m *entryRepoMock) ToggleFavorite(ctx context.Context, id int64) (domain.Entry, error) {
	return m.ToggleFavoriteFunc(ctx, id)
}

func (m *entryRepoMock) ReplacePeople(ctx context.Context, entryID int64, personIDs []int64) error {
	m.replacePeopleCalls = append(m.replacePeopleCalls, struct {
		EntryID   int64
		PersonIDs []int64
	}{entryID, personIDs})
	if m.ReplacePeopleFunc != nil {
		return m.ReplacePeopleFunc(ctx, entryID, personIDs)
	}
	return nil
}

func (m *entryRepoMock) ListPeople(ctx context.Context, entryID int64) ([]domain.Person, error) {
	return m.ListPeopleFunc(ctx, entryID)
}

func (m *entryRepoMock) ListPeopleByEntryIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.Person, error) {
	if m.ListPeopleByEntryIDsFunc == nil {
		return map[int64][]domain.Person{}, nil
	}
	return m.ListPeopleByEntryIDsFunc(ctx, entryIDs)
}

func (m *entryRepoMock) DeletePeopleByEntry(ctx context.Context, entryID int64) error {
	m.deletePeopleByEntryCalls = append(m.deletePeopleByEntryCalls, entryID)
	if m.DeletePeopleByEntryFunc != nil {
		return m.DeletePeopleByEntryFunc(ctx, entryID)
	}
	return nil
}

func (m *entryRepoMock) ListEntryIDsByPerson(ctx context.Context, personID int64) ([]int64, error) {
	return m.ListEntryIDsByPersonFunc(ctx, personID)
}

type emotionReaderMock struct {
	ListFunc func(ctx context.Context) ([]domain.Emotion, error)
}

func (m *emotionReaderMock) List(ctx context.Context) ([]domain.Emotion, error) {
	if m.ListFunc == nil {
		return []domain.Emotion{}, nil
	}
	return m.ListFunc(ctx)
}

type placeReaderMock struct {
	ListFunc func(ctx context.Context) ([]domain.Place, error)
}

func (m *placeReaderMock) List(ctx context.Context) ([]domain.Place, error) {
	if m.ListFunc == nil {
		return []domain.Place{}, nil
	}
	return m.ListFunc(ctx)
}

type txManagerMock struct {
	runInTxCalls int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.runInTxCalls++
	return fn(ctx)
}
