package backup

import (
	"context"
	"strings"

	"github.com/daybook-app/daybook/internal/domain"
)

// ImportSummary reports what the import actually did. Skipped counts items
// that failed individually; a partial restore is better than none.
type ImportSummary struct {
	Emotions int `json:"emotions"`
	People   int `json:"people"`
	Places   int `json:"places"`
	Entries  int `json:"entries"`
	Skipped  int `json:"skipped"`
}

// Import restores a backup document into the database. Imported records get
// fresh ids; references inside entries are remapped through the old ids.
// Items that fail to insert are skipped and logged, not fatal. Tag
// references that cannot be remapped are dropped from the entry.
func (s *Service) Import(ctx context.Context, doc Document) (ImportSummary, error) {
	if err := validateDocument(doc); err != nil {
		return ImportSummary{}, err
	}

	var summary ImportSummary
	log := s.log

	emotionIDs := make(map[int64]int64, len(doc.Emotions))
	for _, rec := range doc.Emotions {
		created, err := s.emotions.Create(ctx, rec.Name, rec.Emoji, rec.Color)
		if err != nil {
			log.WarnContext(ctx, "skipping emotion on import", "name", rec.Name, "error", err)
			summary.Skipped++
			continue
		}
		emotionIDs[rec.ID] = created.ID
		summary.Emotions++
	}

	personIDs := make(map[int64]int64, len(doc.People))
	for _, rec := range doc.People {
		created, err := s.people.Create(ctx, rec.Name)
		if err != nil {
			log.WarnContext(ctx, "skipping person on import", "name", rec.Name, "error", err)
			summary.Skipped++
			continue
		}
		personIDs[rec.ID] = created.ID
		summary.People++
	}

	placeIDs := make(map[int64]int64, len(doc.Places))
	for _, rec := range doc.Places {
		created, err := s.places.Create(ctx, rec.Name, rec.Icon)
		if err != nil {
			log.WarnContext(ctx, "skipping place on import", "name", rec.Name, "error", err)
			summary.Skipped++
			continue
		}
		placeIDs[rec.ID] = created.ID
		summary.Places++
	}

	for _, rec := range doc.Entries {
		params := domain.EntryCreateParams{
			Title:      rec.Title,
			Content:    rec.Content,
			IsFavorite: rec.IsFavorite,
		}
		if !rec.CreatedAt.IsZero() {
			createdAt := rec.CreatedAt
			params.CreatedAt = &createdAt
		}
		if rec.EmotionID != nil {
			if newID, ok := emotionIDs[*rec.EmotionID]; ok {
				params.EmotionID = &newID
			}
		}
		if rec.PlaceID != nil {
			if newID, ok := placeIDs[*rec.PlaceID]; ok {
				params.PlaceID = &newID
			}
		}

		created, err := s.entries.Create(ctx, params)
		if err != nil {
			log.WarnContext(ctx, "skipping entry on import", "title", rec.Title, "error", err)
			summary.Skipped++
			continue
		}

		// the embedded people snapshots are authoritative; peopleIds covers
		// documents that carry only ids
		oldPeople := rec.PeopleIDs
		if len(rec.People) > 0 {
			oldPeople = make([]int64, 0, len(rec.People))
			for _, p := range rec.People {
				oldPeople = append(oldPeople, p.ID)
			}
		}
		remapped := make([]int64, 0, len(oldPeople))
		for _, oldID := range oldPeople {
			if newID, ok := personIDs[oldID]; ok {
				remapped = append(remapped, newID)
			}
		}
		if len(remapped) > 0 {
			if err := s.entries.ReplacePeople(ctx, created.ID, remapped); err != nil {
				log.WarnContext(ctx, "failed to attach people on import", "entry_id", created.ID, "error", err)
			}
		}

		summary.Entries++
	}

	return summary, nil
}

func validateDocument(doc Document) error {
	if strings.TrimSpace(doc.Version) == "" {
		return domain.NewValidationError("version", "is required")
	}
	if major, _, _ := strings.Cut(doc.Version, "."); major != "1" {
		return domain.NewValidationError("version", "is not supported")
	}
	return nil
}
