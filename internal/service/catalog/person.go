package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybook-app/daybook/internal/domain"
)

func (s *Service) ListPeople(ctx context.Context) ([]domain.Person, error) {
	return s.people.List(ctx)
}

func (s *Service) GetPerson(ctx context.Context, id int64) (domain.Person, error) {
	return s.people.GetByID(ctx, id)
}

func (s *Service) CreatePerson(ctx context.Context, in CreatePersonInput) (domain.Person, error) {
	if err := in.Validate(); err != nil {
		return domain.Person{}, err
	}

	return s.people.Create(ctx, strings.TrimSpace(in.Name))
}

func (s *Service) UpdatePerson(ctx context.Context, id int64, in UpdatePersonInput) (domain.Person, error) {
	if err := in.Validate(); err != nil {
		return domain.Person{}, err
	}

	return s.people.Update(ctx, id, in.Params())
}

// DeletePerson removes the person and their entry associations in one
// transaction. Entries themselves are untouched.
func (s *Service) DeletePerson(ctx context.Context, id int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.entries.DeletePeopleByPerson(ctx, id); err != nil {
			return fmt.Errorf("delete person associations: %w", err)
		}
		return s.people.Delete(ctx, id)
	})
}
