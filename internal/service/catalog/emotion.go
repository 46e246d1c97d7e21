package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybook-app/daybook/internal/domain"
)

func (s *Service) ListEmotions(ctx context.Context) ([]domain.Emotion, error) {
	return s.emotions.List(ctx)
}

func (s *Service) GetEmotion(ctx context.Context, id int64) (domain.Emotion, error) {
	return s.emotions.GetByID(ctx, id)
}

func (s *Service) CreateEmotion(ctx context.Context, in CreateEmotionInput) (domain.Emotion, error) {
	if err := in.Validate(); err != nil {
		return domain.Emotion{}, err
	}

	return s.emotions.Create(ctx, strings.TrimSpace(in.Name), in.Emoji, in.Color)
}

func (s *Service) UpdateEmotion(ctx context.Context, id int64, in UpdateEmotionInput) (domain.Emotion, error) {
	if err := in.Validate(); err != nil {
		return domain.Emotion{}, err
	}

	return s.emotions.Update(ctx, id, in.Params())
}

// DeleteEmotion removes the emotion and clears it from every entry that
// references it. Both steps run in one transaction so an entry never points
// at a deleted emotion.
func (s *Service) DeleteEmotion(ctx context.Context, id int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.entries.ClearEmotionRefs(ctx, id); err != nil {
			return fmt.Errorf("clear emotion refs: %w", err)
		}
		return s.emotions.Delete(ctx, id)
	})
}
