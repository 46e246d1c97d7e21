package rest

import (
	"net/http"

	"github.com/daybook-app/daybook/internal/service/catalog"
)

// ListEmotions handles GET /api/emotions.
func (h *CatalogHandler) ListEmotions(w http.ResponseWriter, r *http.Request) {
	emotions, err := h.svc.ListEmotions(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]emotionResponse, 0, len(emotions))
	for _, e := range emotions {
		resp = append(resp, toEmotionResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetEmotion handles GET /api/emotions/{id}.
func (h *CatalogHandler) GetEmotion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	e, err := h.svc.GetEmotion(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmotionResponse(e))
}

// CreateEmotion handles POST /api/emotions.
func (h *CatalogHandler) CreateEmotion(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateEmotionInput
	if !decodeBody(w, r, &req) {
		return
	}

	e, err := h.svc.CreateEmotion(r.Context(), req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEmotionResponse(e))
}

// UpdateEmotion handles PUT /api/emotions/{id}.
func (h *CatalogHandler) UpdateEmotion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req catalog.UpdateEmotionInput
	if !decodeBody(w, r, &req) {
		return
	}

	e, err := h.svc.UpdateEmotion(r.Context(), id, req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmotionResponse(e))
}

// DeleteEmotion handles DELETE /api/emotions/{id}.
func (h *CatalogHandler) DeleteEmotion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteEmotion(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
