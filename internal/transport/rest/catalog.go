package rest

import (
	"context"
	"log/slog"

	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	ListEmotions(ctx context.Context) ([]domain.Emotion, error)
	GetEmotion(ctx context.Context, id int64) (domain.Emotion, error)
	CreateEmotion(ctx context.Context, in catalog.CreateEmotionInput) (domain.Emotion, error)
	UpdateEmotion(ctx context.Context, id int64, in catalog.UpdateEmotionInput) (domain.Emotion, error)
	DeleteEmotion(ctx context.Context, id int64) error

	ListPeople(ctx context.Context) ([]domain.Person, error)
	GetPerson(ctx context.Context, id int64) (domain.Person, error)
	CreatePerson(ctx context.Context, in catalog.CreatePersonInput) (domain.Person, error)
	UpdatePerson(ctx context.Context, id int64, in catalog.UpdatePersonInput) (domain.Person, error)
	DeletePerson(ctx context.Context, id int64) error

	ListPlaces(ctx context.Context) ([]domain.Place, error)
	GetPlace(ctx context.Context, id int64) (domain.Place, error)
	CreatePlace(ctx context.Context, in catalog.CreatePlaceInput) (domain.Place, error)
	UpdatePlace(ctx context.Context, id int64, in catalog.UpdatePlaceInput) (domain.Place, error)
	DeletePlace(ctx context.Context, id int64) error
}

// CatalogHandler serves the emotion, person and place endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type emotionResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

func toEmotionResponse(e domain.Emotion) emotionResponse {
	return emotionResponse{ID: e.ID, Name: e.Name, Emoji: e.Emoji, Color: e.Color}
}

type personResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toPersonResponse(p domain.Person) personResponse {
	return personResponse{ID: p.ID, Name: p.Name}
}

type placeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func toPlaceResponse(p domain.Place) placeResponse {
	return placeResponse{ID: p.ID, Name: p.Name, Icon: p.Icon}
}
