package journal

import (
	"context"
	"fmt"
)

// DeleteEntry removes the entry and its people associations in one
// transaction.
func (s *Service) DeleteEntry(ctx context.Context, id int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.entries.DeletePeopleByEntry(ctx, id); err != nil {
			return fmt.Errorf("delete entry associations: %w", err)
		}
		return s.entries.Delete(ctx, id)
	})
}
