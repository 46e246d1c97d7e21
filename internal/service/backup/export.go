package backup

import (
	"context"
	"fmt"
)

// Export assembles a complete backup document from the current database
// state. Slices are always non-nil so the JSON carries arrays, not nulls.
func (s *Service) Export(ctx context.Context) (Document, error) {
	doc := Document{
		Version:   Version,
		CreatedAt: s.now().UTC(),
		Entries:   []EntryRecord{},
		Emotions:  []EmotionRecord{},
		People:    []PersonRecord{},
		Places:    []PlaceRecord{},
	}

	emotions, err := s.emotions.List(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("export emotions: %w", err)
	}
	emotionByID := make(map[int64]EmotionRecord, len(emotions))
	for _, e := range emotions {
		rec := EmotionRecord{ID: e.ID, Name: e.Name, Emoji: e.Emoji, Color: e.Color}
		doc.Emotions = append(doc.Emotions, rec)
		emotionByID[e.ID] = rec
	}

	people, err := s.people.List(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("export people: %w", err)
	}
	for _, p := range people {
		doc.People = append(doc.People, PersonRecord{ID: p.ID, Name: p.Name})
	}

	places, err := s.places.List(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("export places: %w", err)
	}
	placeByID := make(map[int64]PlaceRecord, len(places))
	for _, p := range places {
		rec := PlaceRecord{ID: p.ID, Name: p.Name, Icon: p.Icon}
		doc.Places = append(doc.Places, rec)
		placeByID[p.ID] = rec
	}

	entries, err := s.entries.List(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("export entries: %w", err)
	}

	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	peopleByEntry, err := s.entries.ListPeopleByEntryIDs(ctx, ids)
	if err != nil {
		return Document{}, fmt.Errorf("export entry people: %w", err)
	}

	for _, e := range entries {
		rec := EntryRecord{
			ID:         e.ID,
			Title:      e.Title,
			Content:    e.Content,
			EmotionID:  e.EmotionID,
			PlaceID:    e.PlaceID,
			CreatedAt:  e.CreatedAt,
			IsFavorite: e.IsFavorite,
			People:     []PersonRecord{},
			PeopleIDs:  []int64{},
		}
		// a dangling tag ref leaves the snapshot unset
		if e.EmotionID != nil {
			if em, ok := emotionByID[*e.EmotionID]; ok {
				rec.Emotion = &em
			}
		}
		if e.PlaceID != nil {
			if pl, ok := placeByID[*e.PlaceID]; ok {
				rec.Place = &pl
			}
		}
		for _, p := range peopleByEntry[e.ID] {
			rec.People = append(rec.People, PersonRecord{ID: p.ID, Name: p.Name})
			rec.PeopleIDs = append(rec.PeopleIDs, p.ID)
		}
		doc.Entries = append(doc.Entries, rec)
	}

	return doc, nil
}
