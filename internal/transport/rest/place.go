package rest

import (
	"net/http"

	"github.com/daybook-app/daybook/internal/service/catalog"
)

// ListPlaces handles GET /api/places.
func (h *CatalogHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.svc.ListPlaces(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]placeResponse, 0, len(places))
	for _, p := range places {
		resp = append(resp, toPlaceResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetPlace handles GET /api/places/{id}.
func (h *CatalogHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetPlace(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlaceResponse(p))
}

// CreatePlace handles POST /api/places.
func (h *CatalogHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreatePlaceInput
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.svc.CreatePlace(r.Context(), req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlaceResponse(p))
}

// UpdatePlace handles PUT /api/places/{id}.
func (h *CatalogHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req catalog.UpdatePlaceInput
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.svc.UpdatePlace(r.Context(), id, req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlaceResponse(p))
}

// DeletePlace handles DELETE /api/places/{id}.
func (h *CatalogHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeletePlace(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
