package journal

import (
	"context"

	"github.com/daybook-app/daybook/internal/domain"
)

// ToggleFavorite flips the entry's favorite flag and returns the updated
// entry with relations. The flip happens in a single statement, so two
// concurrent toggles land on the original value.
func (s *Service) ToggleFavorite(ctx context.Context, id int64) (domain.EntryWithRelations, error) {
	entry, err := s.entries.ToggleFavorite(ctx, id)
	if err != nil {
		return domain.EntryWithRelations{}, err
	}
	return s.enrichOne(ctx, entry)
}
