package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/service/journal"
)

// journalService defines the minimal interface needed by EntryHandler.
type journalService interface {
	ListEntries(ctx context.Context) ([]domain.EntryWithRelations, error)
	ListEntriesByEmotion(ctx context.Context, emotionID int64) ([]domain.EntryWithRelations, error)
	ListEntriesByPlace(ctx context.Context, placeID int64) ([]domain.EntryWithRelations, error)
	ListEntriesByPerson(ctx context.Context, personID int64) ([]domain.EntryWithRelations, error)
	ListFavoriteEntries(ctx context.Context) ([]domain.EntryWithRelations, error)
	GetEntry(ctx context.Context, id int64) (domain.EntryWithRelations, error)
	CreateEntry(ctx context.Context, in journal.CreateEntryInput) (domain.EntryWithRelations, error)
	UpdateEntry(ctx context.Context, id int64, in journal.UpdateEntryInput) (domain.EntryWithRelations, error)
	DeleteEntry(ctx context.Context, id int64) error
	ToggleFavorite(ctx context.Context, id int64) (domain.EntryWithRelations, error)
}

// EntryHandler serves the journal entry endpoints.
type EntryHandler struct {
	svc journalService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc journalService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entry")}
}

type entryResponse struct {
	ID         int64            `json:"id"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	EmotionID  *int64           `json:"emotionId"`
	PlaceID    *int64           `json:"placeId"`
	CreatedAt  time.Time        `json:"createdAt"`
	IsFavorite bool             `json:"isFavorite"`
	Emotion    *emotionResponse `json:"emotion,omitempty"`
	Place      *placeResponse   `json:"place,omitempty"`
	People     []personResponse `json:"people"`
}

func toEntryResponse(e domain.EntryWithRelations) entryResponse {
	resp := entryResponse{
		ID:         e.ID,
		Title:      e.Title,
		Content:    e.Content,
		EmotionID:  e.EmotionID,
		PlaceID:    e.PlaceID,
		CreatedAt:  e.CreatedAt,
		IsFavorite: e.IsFavorite,
		People:     make([]personResponse, 0, len(e.People)),
	}
	if e.Emotion != nil {
		em := toEmotionResponse(*e.Emotion)
		resp.Emotion = &em
	}
	if e.Place != nil {
		pl := toPlaceResponse(*e.Place)
		resp.Place = &pl
	}
	for _, p := range e.People {
		resp.People = append(resp.People, toPersonResponse(p))
	}
	return resp
}

func toEntryResponses(entries []domain.EntryWithRelations) []entryResponse {
	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toEntryResponse(e))
	}
	return resp
}

// List handles GET /api/entries.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListEntries(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// ListFavorites handles GET /api/entries/favorites.
func (h *EntryHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListFavoriteEntries(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// ListByEmotion handles GET /api/entries/by-emotion/{id}.
func (h *EntryHandler) ListByEmotion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.ListEntriesByEmotion(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// ListByPlace handles GET /api/entries/by-place/{id}.
func (h *EntryHandler) ListByPlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.ListEntriesByPlace(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// ListByPerson handles GET /api/entries/by-person/{id}.
func (h *EntryHandler) ListByPerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.ListEntriesByPerson(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// Get handles GET /api/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Create handles POST /api/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req journal.CreateEntryInput
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Update handles PUT /api/entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req journal.UpdateEntryInput
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), id, req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleFavorite handles PATCH /api/entries/{id}/toggle-favorite.
func (h *EntryHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.ToggleFavorite(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}
