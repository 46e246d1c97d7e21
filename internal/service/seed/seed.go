// Package seed populates the default tag vocabulary on first start.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daybook-app/daybook/internal/domain"
)

var defaultEmotions = []domain.Emotion{
	{Name: "Happy", Emoji: "😊", Color: "#818CF8"},
	{Name: "Sad", Emoji: "😔", Color: "#60A5FA"},
	{Name: "Angry", Emoji: "😡", Color: "#EF4444"},
	{Name: "Calm", Emoji: "😌", Color: "#34D399"},
	{Name: "Anxious", Emoji: "😰", Color: "#F59E0B"},
	{Name: "Loved", Emoji: "🥰", Color: "#EC4899"},
	{Name: "Excited", Emoji: "🤩", Color: "#8B5CF6"},
	{Name: "Frustrated", Emoji: "😤", Color: "#F97316"},
}

var defaultPlaces = []domain.Place{
	{Name: "Home", Icon: "🏠"},
	{Name: "Work", Icon: "🏢"},
	{Name: "Café", Icon: "☕"},
	{Name: "Park", Icon: "🌳"},
}

type EmotionStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, name, emoji, color string) (domain.Emotion, error)
}

type PlaceStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, name, icon string) (domain.Place, error)
}

type Seeder struct {
	emotions EmotionStore
	places   PlaceStore
	log      *slog.Logger
}

func NewSeeder(emotions EmotionStore, places PlaceStore, log *slog.Logger) *Seeder {
	return &Seeder{emotions: emotions, places: places, log: log}
}

// Run inserts the default emotions and places, but only into empty tables.
// Existing data, including a deliberately emptied-then-refilled vocabulary,
// is never touched twice within one table.
func (s *Seeder) Run(ctx context.Context) error {
	n, err := s.emotions.Count(ctx)
	if err != nil {
		return fmt.Errorf("count emotions: %w", err)
	}
	if n == 0 {
		for _, e := range defaultEmotions {
			if _, err := s.emotions.Create(ctx, e.Name, e.Emoji, e.Color); err != nil {
				return fmt.Errorf("seed emotion %q: %w", e.Name, err)
			}
		}
		s.log.InfoContext(ctx, "seeded default emotions", "count", len(defaultEmotions))
	}

	n, err = s.places.Count(ctx)
	if err != nil {
		return fmt.Errorf("count places: %w", err)
	}
	if n == 0 {
		for _, p := range defaultPlaces {
			if _, err := s.places.Create(ctx, p.Name, p.Icon); err != nil {
				return fmt.Errorf("seed place %q: %w", p.Name, err)
			}
		}
		s.log.InfoContext(ctx, "seeded default places", "count", len(defaultPlaces))
	}

	return nil
}
