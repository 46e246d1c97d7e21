package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybook-app/daybook/internal/domain"
)

func (s *Service) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	return s.places.List(ctx)
}

func (s *Service) GetPlace(ctx context.Context, id int64) (domain.Place, error) {
	return s.places.GetByID(ctx, id)
}

func (s *Service) CreatePlace(ctx context.Context, in CreatePlaceInput) (domain.Place, error) {
	if err := in.Validate(); err != nil {
		return domain.Place{}, err
	}

	return s.places.Create(ctx, strings.TrimSpace(in.Name), in.Icon)
}

func (s *Service) UpdatePlace(ctx context.Context, id int64, in UpdatePlaceInput) (domain.Place, error) {
	if err := in.Validate(); err != nil {
		return domain.Place{}, err
	}

	return s.places.Update(ctx, id, in.Params())
}

// DeletePlace removes the place and clears it from every entry that
// references it, in one transaction.
func (s *Service) DeletePlace(ctx context.Context, id int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.entries.ClearPlaceRefs(ctx, id); err != nil {
			return fmt.Errorf("clear place refs: %w", err)
		}
		return s.places.Delete(ctx, id)
	})
}
