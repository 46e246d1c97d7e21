package journal

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/daybook-app/daybook/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateEntry_WithPeopleInTx(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		CreateFunc: func(ctx context.Context, params domain.EntryCreateParams) (domain.Entry, error) {
			if params.CreatedAt != nil {
				t.Error("createdAt must be nil on API create; the database assigns it")
			}
			return domain.Entry{ID: 10, Title: params.Title, Content: params.Content, CreatedAt: time.Now()}, nil
		},
	}
	tx := &txManagerMock{}
	svc := NewService(entryMock, &emotionReaderMock{}, &placeReaderMock{}, tx)

	got, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Entry:     EntryFields{Title: "First day", Content: "It went well."},
		PeopleIDs: []int64{1, 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID != 10 {
		t.Errorf("id: got %d, want 10", got.ID)
	}
	if got.People == nil {
		t.Error("people must be non-nil")
	}
	if tx.runInTxCalls != 1 {
		t.Errorf("RunInTx calls: got %d, want 1", tx.runInTxCalls)
	}
	if len(entryMock.replacePeopleCalls) != 1 {
		t.Fatalf("ReplacePeople calls: got %d, want 1", len(entryMock.replacePeopleCalls))
	}
	if call := entryMock.replacePeopleCalls[0]; call.EntryID != 10 || len(call.PersonIDs) != 2 {
		t.Errorf("ReplacePeople args: got %+v", call)
	}
}

func TestCreateEntry_FavoriteFlagPassedThrough(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		CreateFunc: func(ctx context.Context, params domain.EntryCreateParams) (domain.Entry, error) {
			return domain.Entry{ID: 11, Title: params.Title, Content: params.Content, IsFavorite: params.IsFavorite}, nil
		},
	}
	svc := NewService(entryMock, &emotionReaderMock{}, &placeReaderMock{}, &txManagerMock{})

	got, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Entry: EntryFields{Title: "Day", Content: "text", IsFavorite: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsFavorite {
		t.Error("favorite flag from the create body must be stored")
	}

	// absent flag defaults to false
	got, err = svc.CreateEntry(context.Background(), CreateEntryInput{
		Entry: EntryFields{Title: "Day", Content: "text"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IsFavorite {
		t.Error("favorite flag must default to false")
	}
}

func TestCreateEntry_ValidationFailures(t *testing.T) {
	t.Parallel()

	svc := NewService(&entryRepoMock{}, &emotionReaderMock{}, &placeReaderMock{}, &txManagerMock{})

	tests := []struct {
		name  string
		input CreateEntryInput
	}{
		{"empty title", CreateEntryInput{Entry: EntryFields{Content: "text"}}},
		{"blank title", CreateEntryInput{Entry: EntryFields{Title: "   ", Content: "text"}}},
		{"empty content", CreateEntryInput{Entry: EntryFields{Title: "Day"}}},
		{"negative emotion id", CreateEntryInput{Entry: EntryFields{Title: "Day", Content: "text", EmotionID: int64Ptr(-1)}}},
		{"zero person id", CreateEntryInput{Entry: EntryFields{Title: "Day", Content: "text"}, PeopleIDs: []int64{0}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateEntry(context.Background(), tc.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateEntry_ReplacesPeopleWhenProvided(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		UpdateFunc: func(ctx context.Context, id int64, params domain.EntryUpdateParams) (domain.Entry, error) {
			return domain.Entry{ID: id, Title: *params.Title, Content: "c"}, nil
		},
	}
	svc := NewService(entryMock, &emotionReaderMock{}, &placeReaderMock{}, &txManagerMock{})

	people := []int64{5}
	_, err := svc.UpdateEntry(context.Background(), 3, UpdateEntryInput{
		Entry:     &UpdateEntryFields{Title: strPtr("Renamed")},
		PeopleIDs: &people,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entryMock.replacePeopleCalls) != 1 {
		t.Fatalf("ReplacePeople calls: got %d, want 1", len(entryMock.replacePeopleCalls))
	}
}

func TestUpdateEntry_OmittedPeopleLeftAlone(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		UpdateFunc: func(ctx context.Context, id int64, params domain.EntryUpdateParams) (domain.Entry, error) {
			return domain.Entry{ID: id}, nil
		},
	}
	svc := NewService(entryMock, &emotionReaderMock{}, &placeReaderMock{}, &txManagerMock{})

	_, err := svc.UpdateEntry(context.Background(), 3, UpdateEntryInput{
		Entry: &UpdateEntryFields{Title: strPtr("Renamed")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entryMock.replacePeopleCalls) != 0 {
		t.Errorf("ReplacePeople must not run when peopleIds is omitted, got %d calls", len(entryMock.replacePeopleCalls))
	}
}

func TestUpdateEntry_EmptyPeopleClearsAll(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (domain.Entry, error) {
			return domain.Entry{ID: id}, nil
		},
	}
	svc := NewService(entryMock, &emotionReaderMock{}, &placeReaderMock{}, &txManagerMock{})

	people := []int64{}
	_, err := svc.UpdateEntry(context.Background(), 3, UpdateEntryInput{PeopleIDs: &people})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entryMock.updateCalls) != 0 {
		t.Error("entry row must not be updated on a people-only change")
	}
	if len(entryMock.replacePeopleCalls) != 1 || len(entryMock.replacePeopleCalls[0].PersonIDs) != 0 {
		t.Errorf("ReplacePeople calls: got %+v, want one call with empty set", entryMock.replacePeopleCalls)
	}
}

func TestUpdateEntry_EmptyBodyRejected(t *testing.T) {
	t.Parallel()

	svc := NewService(&entryRepoMock{}, &emotionReaderMock{}, &placeReaderMock{}, &txManagerMock{})

	_, err := svc.UpdateEntry(context.Background(), 3, UpdateEntryInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateEntry_NullEmotionClears(t *testing.T) {
	t.Parallel()

	var body UpdateEntryInput
	if err := json.Unmarshal([]byte(`{"entry":{"emotionId":null}}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	params := body.Params()
	if !params.ClearEmotion {
		t.Error("explicit null emotionId must set ClearEmotion")
	}
	if params.EmotionID != nil {
		t.Error("EmotionID must stay nil when clearing")
	}

	// absent field leaves both unset
	var noField UpdateEntryInput
	if err := json.Unmarshal([]byte(`{"entry":{"title":"x"}}`), &noField); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p := noField.Params(); p.ClearEmotion || p.EmotionID != nil {
		t.Error("absent emotionId must leave the column untouched")
	}
}

func TestDeleteEntry_RemovesAssociationsInTx(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		DeleteFunc: func(ctx context.Context, id int64) error { return nil },
	}
	tx := &txManagerMock{}
	svc := NewService(entryMock, &emotionReaderMock{}, &placeReaderMock{}, tx)

	if err := svc.DeleteEntry(context.Background(), 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entryMock.deletePeopleByEntryCalls) != 1 || entryMock.deletePeopleByEntryCalls[0] != 4 {
		t.Errorf("DeletePeopleByEntry calls: got %v, want [4]", entryMock.deletePeopleByEntryCalls)
	}
	if len(entryMock.deleteCalls) != 1 {
		t.Errorf("Delete calls: got %d, want 1", len(entryMock.deleteCalls))
	}
	if tx.runInTxCalls != 1 {
		t.Errorf("RunInTx calls: got %d, want 1", tx.runInTxCalls)
	}
}

func TestGetEntry_EnrichesRelations(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (domain.Entry, error) {
			return domain.Entry{ID: id, Title: "Day", EmotionID: int64Ptr(1), PlaceID: int64Ptr(2)}, nil
		},
		ListPeopleByEntryIDsFunc: func(ctx context.Context, entryIDs []int64) (map[int64][]domain.Person, error) {
			return map[int64][]domain.Person{5: {{ID: 9, Name: "Sam"}}}, nil
		},
	}
	emotions := &emotionReaderMock{
		ListFunc: func(ctx context.Context) ([]domain.Emotion, error) {
			return []domain.Emotion{{ID: 1, Name: "Happy", Emoji: "😊", Color: "#818CF8"}}, nil
		},
	}
	places := &placeReaderMock{
		ListFunc: func(ctx context.Context) ([]domain.Place, error) {
			return []domain.Place{{ID: 2, Name: "Home", Icon: "🏠"}}, nil
		},
	}
	svc := NewService(entryMock, emotions, places, &txManagerMock{})

	got, err := svc.GetEntry(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Emotion == nil || got.Emotion.Name != "Happy" {
		t.Errorf("emotion: got %+v, want Happy", got.Emotion)
	}
	if got.Place == nil || got.Place.Name != "Home" {
		t.Errorf("place: got %+v, want Home", got.Place)
	}
	if len(got.People) != 1 || got.People[0].Name != "Sam" {
		t.Errorf("people: got %+v, want [Sam]", got.People)
	}
}

func TestGetEntry_DanglingRefsResolveToNil(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (domain.Entry, error) {
			return domain.Entry{ID: id, EmotionID: int64Ptr(99), PlaceID: int64Ptr(98)}, nil
		},
	}
	svc := NewService(entryMock, &emotionReaderMock{}, &placeReaderMock{}, &txManagerMock{})

	got, err := svc.GetEntry(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Emotion != nil || got.Place != nil {
		t.Error("references to missing tags must resolve to nil, not error")
	}
	if got.People == nil || len(got.People) != 0 {
		t.Errorf("people: got %v, want empty non-nil slice", got.People)
	}
}

func TestListEntriesByPerson_EmptyForUnknownPerson(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		ListEntryIDsByPersonFunc: func(ctx context.Context, personID int64) ([]int64, error) {
			return []int64{}, nil
		},
		ListByIDsFunc: func(ctx context.Context, ids []int64) ([]domain.Entry, error) {
			if len(ids) != 0 {
				t.Errorf("expected empty id set, got %v", ids)
			}
			return []domain.Entry{}, nil
		},
	}
	svc := NewService(entryMock, &emotionReaderMock{}, &placeReaderMock{}, &txManagerMock{})

	got, err := svc.ListEntriesByPerson(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("entries: got %d, want 0", len(got))
	}
}

func TestToggleFavorite_ReturnsUpdatedEntry(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		ToggleFavoriteFunc: func(ctx context.Context, id int64) (domain.Entry, error) {
			return domain.Entry{ID: id, IsFavorite: true}, nil
		},
	}
	svc := NewService(entryMock, &emotionReaderMock{}, &placeReaderMock{}, &txManagerMock{})

	got, err := svc.ToggleFavorite(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsFavorite {
		t.Error("favorite flag must reflect the flipped value")
	}
}

func TestToggleFavorite_NotFound(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		ToggleFavoriteFunc: func(ctx context.Context, id int64) (domain.Entry, error) {
			return domain.Entry{}, domain.ErrNotFound
		},
	}
	svc := NewService(entryMock, &emotionReaderMock{}, &placeReaderMock{}, &txManagerMock{})

	_, err := svc.ToggleFavorite(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateEntry_IsFavoriteViaPut(t *testing.T) {
	t.Parallel()

	entryMock := &entryRepoMock{
		UpdateFunc: func(ctx context.Context, id int64, params domain.EntryUpdateParams) (domain.Entry, error) {
			if params.IsFavorite == nil || !*params.IsFavorite {
				t.Errorf("isFavorite param: got %v, want true", params.IsFavorite)
			}
			return domain.Entry{ID: id, IsFavorite: true}, nil
		},
	}
	svc := NewService(entryMock, &emotionReaderMock{}, &placeReaderMock{}, &txManagerMock{})

	_, err := svc.UpdateEntry(context.Background(), 1, UpdateEntryInput{
		Entry: &UpdateEntryFields{IsFavorite: boolPtr(true)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
