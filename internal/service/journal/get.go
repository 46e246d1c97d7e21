package journal

import (
	"context"

	"github.com/daybook-app/daybook/internal/domain"
)

// GetEntry returns a single entry with its relations.
func (s *Service) GetEntry(ctx context.Context, id int64) (domain.EntryWithRelations, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return domain.EntryWithRelations{}, err
	}
	return s.enrichOne(ctx, entry)
}
