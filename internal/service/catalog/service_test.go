package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/daybook-app/daybook/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestCreateEmotion_Success(t *testing.T) {
	t.Parallel()

	emotionMock := &emotionRepoMock{
		CreateFunc: func(ctx context.Context, name, emoji, color string) (domain.Emotion, error) {
			return domain.Emotion{ID: 1, Name: name, Emoji: emoji, Color: color}, nil
		},
	}
	svc := NewService(emotionMock, &personRepoMock{}, &placeRepoMock{}, &entryRefsMock{}, &txManagerMock{})

	got, err := svc.CreateEmotion(context.Background(), CreateEmotionInput{
		Name: "  Happy  ", Emoji: "😊", Color: "#818CF8",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Happy" {
		t.Errorf("name: got %q, want %q (trimmed)", got.Name, "Happy")
	}
	if got.ID != 1 {
		t.Errorf("id: got %d, want 1", got.ID)
	}
}

func TestCreateEmotion_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewService(&emotionRepoMock{}, &personRepoMock{}, &placeRepoMock{}, &entryRefsMock{}, &txManagerMock{})

	_, err := svc.CreateEmotion(context.Background(), CreateEmotionInput{Name: "Happy"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(vErr.Errors) != 2 {
		t.Errorf("violations: got %d, want 2 (emoji, color)", len(vErr.Errors))
	}
}

func TestUpdateEmotion_NoFields(t *testing.T) {
	t.Parallel()

	svc := NewService(&emotionRepoMock{}, &personRepoMock{}, &placeRepoMock{}, &entryRefsMock{}, &txManagerMock{})

	_, err := svc.UpdateEmotion(context.Background(), 1, UpdateEmotionInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateEmotion_PartialFields(t *testing.T) {
	t.Parallel()

	var gotParams domain.EmotionUpdateParams
	emotionMock := &emotionRepoMock{
		UpdateFunc: func(ctx context.Context, id int64, params domain.EmotionUpdateParams) (domain.Emotion, error) {
			gotParams = params
			return domain.Emotion{ID: id, Name: "Happy", Emoji: "😊", Color: *params.Color}, nil
		},
	}
	svc := NewService(emotionMock, &personRepoMock{}, &placeRepoMock{}, &entryRefsMock{}, &txManagerMock{})

	_, err := svc.UpdateEmotion(context.Background(), 1, UpdateEmotionInput{Color: strPtr("#000000")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotParams.Name != nil || gotParams.Emoji != nil {
		t.Error("untouched fields must stay nil")
	}
	if gotParams.Color == nil || *gotParams.Color != "#000000" {
		t.Errorf("color param: got %v, want #000000", gotParams.Color)
	}
}

func TestDeleteEmotion_ClearsEntryRefsInTx(t *testing.T) {
	t.Parallel()

	emotionMock := &emotionRepoMock{
		DeleteFunc: func(ctx context.Context, id int64) error { return nil },
	}
	refs := &entryRefsMock{}
	tx := &txManagerMock{}
	svc := NewService(emotionMock, &personRepoMock{}, &placeRepoMock{}, refs, tx)

	if err := svc.DeleteEmotion(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tx.runInTxCalls != 1 {
		t.Errorf("RunInTx calls: got %d, want 1", tx.runInTxCalls)
	}
	if len(refs.clearEmotionCalls) != 1 || refs.clearEmotionCalls[0] != 7 {
		t.Errorf("ClearEmotionRefs calls: got %v, want [7]", refs.clearEmotionCalls)
	}
	if len(emotionMock.deleteCalls) != 1 || emotionMock.deleteCalls[0] != 7 {
		t.Errorf("Delete calls: got %v, want [7]", emotionMock.deleteCalls)
	}
}

func TestDeleteEmotion_NotFoundSkipsNothing(t *testing.T) {
	t.Parallel()

	emotionMock := &emotionRepoMock{
		DeleteFunc: func(ctx context.Context, id int64) error { return domain.ErrNotFound },
	}
	svc := NewService(emotionMock, &personRepoMock{}, &placeRepoMock{}, &entryRefsMock{}, &txManagerMock{})

	err := svc.DeleteEmotion(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePerson_RemovesAssociationsInTx(t *testing.T) {
	t.Parallel()

	personMock := &personRepoMock{
		DeleteFunc: func(ctx context.Context, id int64) error { return nil },
	}
	refs := &entryRefsMock{}
	tx := &txManagerMock{}
	svc := NewService(&emotionRepoMock{}, personMock, &placeRepoMock{}, refs, tx)

	if err := svc.DeletePerson(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(refs.deletePeopleCalls) != 1 || refs.deletePeopleCalls[0] != 3 {
		t.Errorf("DeletePeopleByPerson calls: got %v, want [3]", refs.deletePeopleCalls)
	}
	if len(personMock.deleteCalls) != 1 {
		t.Errorf("person Delete calls: got %d, want 1", len(personMock.deleteCalls))
	}
	if tx.runInTxCalls != 1 {
		t.Errorf("RunInTx calls: got %d, want 1", tx.runInTxCalls)
	}
}

func TestDeletePlace_ClearsEntryRefsInTx(t *testing.T) {
	t.Parallel()

	placeMock := &placeRepoMock{
		DeleteFunc: func(ctx context.Context, id int64) error { return nil },
	}
	refs := &entryRefsMock{}
	svc := NewService(&emotionRepoMock{}, &personRepoMock{}, placeMock, refs, &txManagerMock{})

	if err := svc.DeletePlace(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(refs.clearPlaceCalls) != 1 || refs.clearPlaceCalls[0] != 9 {
		t.Errorf("ClearPlaceRefs calls: got %v, want [9]", refs.clearPlaceCalls)
	}
}

func TestDeletePlace_RefClearFailureAbortsDelete(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	placeMock := &placeRepoMock{
		DeleteFunc: func(ctx context.Context, id int64) error { return nil },
	}
	refs := &entryRefsMock{
		ClearPlaceRefsFunc: func(ctx context.Context, placeID int64) error { return boom },
	}
	svc := NewService(&emotionRepoMock{}, &personRepoMock{}, placeMock, refs, &txManagerMock{})

	err := svc.DeletePlace(context.Background(), 9)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if len(placeMock.deleteCalls) != 0 {
		t.Error("place Delete must not run after ref clearing fails")
	}
}

func TestCreatePlace_EmptyIconAllowed(t *testing.T) {
	t.Parallel()

	placeMock := &placeRepoMock{
		CreateFunc: func(ctx context.Context, name, icon string) (domain.Place, error) {
			// repo substitutes the default icon
			if icon == "" {
				icon = domain.DefaultPlaceIcon
			}
			return domain.Place{ID: 1, Name: name, Icon: icon}, nil
		},
	}
	svc := NewService(&emotionRepoMock{}, &personRepoMock{}, placeMock, &entryRefsMock{}, &txManagerMock{})

	got, err := svc.CreatePlace(context.Background(), CreatePlaceInput{Name: "Cafe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Icon != domain.DefaultPlaceIcon {
		t.Errorf("icon: got %q, want default %q", got.Icon, domain.DefaultPlaceIcon)
	}
}

func TestUpdatePerson_RequiresName(t *testing.T) {
	t.Parallel()

	svc := NewService(&emotionRepoMock{}, &personRepoMock{}, &placeRepoMock{}, &entryRefsMock{}, &txManagerMock{})

	_, err := svc.UpdatePerson(context.Background(), 1, UpdatePersonInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
