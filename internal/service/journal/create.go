package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybook-app/daybook/internal/domain"
)

// CreateEntry stores a new entry and its people associations in one
// transaction. The creation timestamp is assigned by the database.
func (s *Service) CreateEntry(ctx context.Context, in CreateEntryInput) (domain.EntryWithRelations, error) {
	if err := in.Validate(); err != nil {
		return domain.EntryWithRelations{}, err
	}

	var created domain.Entry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.entries.Create(ctx, domain.EntryCreateParams{
			Title:      strings.TrimSpace(in.Entry.Title),
			Content:    in.Entry.Content,
			EmotionID:  in.Entry.EmotionID,
			PlaceID:    in.Entry.PlaceID,
			IsFavorite: in.Entry.IsFavorite,
		})
		if err != nil {
			return err
		}

		if len(in.PeopleIDs) > 0 {
			if err := s.entries.ReplacePeople(ctx, created.ID, in.PeopleIDs); err != nil {
				return fmt.Errorf("attach people: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.EntryWithRelations{}, err
	}

	return s.enrichOne(ctx, created)
}
