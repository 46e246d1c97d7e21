package catalog

import (
	"context"

	"github.com/daybook-app/daybook/internal/domain"
)

var (
	_ EmotionRepo = &emotionRepoMock{}
	_ PersonRepo  = &personRepoMock{}
	_ PlaceRepo   = &placeRepoMock{}
	_ EntryRefs   = &entryRefsMock{}
	_ TxManager   = &txManagerMock{}
)

type emotionRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Emotion, error)
	GetByIDFunc func(ctx context.Context, id int64) (domain.Emotion, error)
	CreateFunc  func(ctx context.Context, name, emoji, color string) (domain.Emotion, error)
	UpdateFunc  func(ctx context.Context, id int64, params domain.EmotionUpdateParams) (domain.Emotion, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	deleteCalls []int64
}

func (m *emotionRepoMock) List(ctx context.Context) ([]domain.Emotion, error) {
	return m.ListFunc(ctx)
}

func (m *emotionRepoMock) GetByID(ctx context.Context, id int64) (domain.Emotion, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *emotionRepoMock) Create(ctx context.Context, name, emoji, color string) (domain.Emotion, error) {
	return m.CreateFunc(ctx, name, emoji, color)
}

func (m *emotionRepoMock) Update(ctx context.Context, id int64, params domain.EmotionUpdateParams) (domain.Emotion, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *emotionRepoMock) Delete(ctx context.Context, id int64) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFunc(ctx, id)
}

type personRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Person, error)
	GetByIDFunc func(ctx context.Context, id int64) (domain.Person, error)
	CreateFunc  func(ctx context.Context, name string) (domain.Person, error)
	UpdateFunc  func(ctx context.Context, id int64, params domain.PersonUpdateParams) (domain.Person, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	deleteCalls []int64
}

func (m *personRepoMock) List(ctx context.Context) ([]domain.Person, error) {
	return m.ListFunc(ctx)
}

func (m *personRepoMock) GetByID(ctx context.Context, id int64) (domain.Person, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *personRepoMock) Create(ctx context.Context, name string) (domain.Person, error) {
	return m.CreateFunc(ctx, name)
}

func (m *personRepoMock) Update(ctx context.Context, id int64, params domain.PersonUpdateParams) (domain.Person, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *personRepoMock) Delete(ctx context.Context, id int64) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFunc(ctx, id)
}

type placeRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Place, error)
	GetByIDFunc func(ctx context.Context, id int64) (domain.Place, error)
	CreateFunc  func(ctx context.Context, name, icon string) (domain.Place, error)
	UpdateFunc  func(ctx context.Context, id int64, params domain.PlaceUpdateParams) (domain.Place, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	deleteCalls []int64
}

func (m *placeRepoMock) List(ctx context.Context) ([]domain.Place, error) {
	return m.ListFunc(ctx)
}

func (m *placeRepoMock) GetByID(ctx context.Context, id int64) (domain.Place, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *placeRepoMock) Create(ctx context.Context, name, icon string) (domain.Place, error) {
	return m.CreateFunc(ctx, name, icon)
}

func (m *placeRepoMock) Update(ctx context.Context, id int64, params domain.PlaceUpdateParams) (domain.Place, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *placeRepoMock) Delete(ctx context.Context, id int64) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFunc(ctx, id)
}

type entryRefsMock struct {
	ClearEmotionRefsFunc     func(ctx context.Context, emotionID int64) error
	ClearPlaceRefsFunc       func(ctx context.Context, placeID int64) error
	DeletePeopleByPersonFunc func(ctx context.Context, personID int64) error

	clearEmotionCalls []int64
	clearPlaceCalls   []int64
	deletePeopleCalls []int64
}

func (m *entryRefsMock) ClearEmotionRefs(ctx context.Context, emotionID int64) error {
	m.clearEmotionCalls = append(m.clearEmotionCalls, emotionID)
	if m.ClearEmotionRefsFunc != nil {
		return m.ClearEmotionRefsFunc(ctx, emotionID)
	}
	return nil
}

func (m *entryRefsMock) ClearPlaceRefs(ctx context.Context, placeID int64) error {
	m.clearPlaceCalls = append(m.clearPlaceCalls, placeID)
	if m.ClearPlaceRefsFunc != nil {
		return m.ClearPlaceRefsFunc(ctx, placeID)
	}
	return nil
}

func (m *entryRefsMock) DeletePeopleByPerson(ctx context.Context, personID int64) error {
	m.deletePeopleCalls = append(m.deletePeopleCalls, personID)
	if m.DeletePeopleByPersonFunc != nil {
		return m.DeletePeopleByPersonFunc(ctx, personID)
	}
	return nil
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	runInTxCalls int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.runInTxCalls++
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
