package journal

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// ListEntries returns all entries, newest first.
func (s *Service) ListEntries(ctx context.Context) ([]domain.EntryWithRelations, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, entries)
}

// ListEntriesByEmotion returns entries tagged with the emotion, newest first.
func (s *Service) ListEntriesByEmotion(ctx context.Context, emotionID int64) ([]domain.EntryWithRelations, error) {
	entries, err := s.entries.ListByEmotion(ctx, emotionID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, entries)
}

// ListEntriesByPlace returns entries tagged with the place, newest first.
func (s *Service) ListEntriesByPlace(ctx context.Context, placeID int64) ([]domain.EntryWithRelations, error) {
	entries, err := s.entries.ListByPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, entries)
}

// ListEntriesByPerson returns entries tagged with the person, newest first.
// An unknown person id yields an empty list, matching the other filters.
func (s *Service) ListEntriesByPerson(ctx context.Context, personID int64) ([]domain.EntryWithRelations, error) {
	ids, err := s.entries.ListEntryIDsByPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("list entry ids by person: %w", err)
	}

	entries, err := s.entries.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, entries)
}

// ListFavoriteEntries returns favorited entries, newest first.
func (s *Service) ListFavoriteEntries(ctx context.Context) ([]domain.EntryWithRelations, error) {
	entries, err := s.entries.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, entries)
}
