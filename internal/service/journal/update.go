package journal

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// UpdateEntry applies a partial update to the entry and, when peopleIds is
// present, replaces its people associations with exactly that set. Both
// changes commit together or not at all.
func (s *Service) UpdateEntry(ctx context.Context, id int64, in UpdateEntryInput) (domain.EntryWithRelations, error) {
	if err := in.Validate(); err != nil {
		return domain.EntryWithRelations{}, err
	}

	var updated domain.Entry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		params := in.Params()

		var err error
		if params.IsZero() {
			// people-only update; still confirm the entry exists
			updated, err = s.entries.GetByID(ctx, id)
		} else {
			updated, err = s.entries.Update(ctx, id, params)
		}
		if err != nil {
			return err
		}

		if in.PeopleIDs != nil {
			if err := s.entries.ReplacePeople(ctx, id, *in.PeopleIDs); err != nil {
				return fmt.Errorf("replace people: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.EntryWithRelations{}, err
	}

	return s.enrichOne(ctx, updated)
}
