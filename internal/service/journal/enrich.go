package journal

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// enrich attaches emotion, place and people to raw entry rows. A reference
// to a missing tag resolves to nil rather than an error; tags may be deleted
// out from under imported data.
func (s *Service) enrich(ctx context.Context, entries []domain.Entry) ([]domain.EntryWithRelations, error) {
	result := make([]domain.EntryWithRelations, 0, len(entries))
	if len(entries) == 0 {
		return result, nil
	}

	emotions, err := s.emotions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load emotions: %w", err)
	}
	emotionByID := make(map[int64]domain.Emotion, len(emotions))
	for _, e := range emotions {
		emotionByID[e.ID] = e
	}

	places, err := s.places.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load places: %w", err)
	}
	placeByID := make(map[int64]domain.Place, len(places))
	for _, p := range places {
		placeByID[p.ID] = p
	}

	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	peopleByEntry, err := s.entries.ListPeopleByEntryIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load entry people: %w", err)
	}

	for _, e := range entries {
		enriched := domain.EntryWithRelations{Entry: e, People: []domain.Person{}}
		if e.EmotionID != nil {
			if em, ok := emotionByID[*e.EmotionID]; ok {
				enriched.Emotion = &em
			}
		}
		if e.PlaceID != nil {
			if pl, ok := placeByID[*e.PlaceID]; ok {
				enriched.Place = &pl
			}
		}
		if people, ok := peopleByEntry[e.ID]; ok {
			enriched.People = people
		}
		result = append(result, enriched)
	}

	return result, nil
}

func (s *Service) enrichOne(ctx context.Context, entry domain.Entry) (domain.EntryWithRelations, error) {
	enriched, err := s.enrich(ctx, []domain.Entry{entry})
	if err != nil {
		return domain.EntryWithRelations{}, err
	}
	return enriched[0], nil
}
