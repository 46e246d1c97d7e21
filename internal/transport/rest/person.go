package rest

import (
	"net/http"

	"github.com/daybook-app/daybook/internal/service/catalog"
)

// ListPeople handles GET /api/people.
func (h *CatalogHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.svc.ListPeople(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]personResponse, 0, len(people))
	for _, p := range people {
		resp = append(resp, toPersonResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetPerson handles GET /api/people/{id}.
func (h *CatalogHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetPerson(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPersonResponse(p))
}

// CreatePerson handles POST /api/people.
func (h *CatalogHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreatePersonInput
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.svc.CreatePerson(r.Context(), req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPersonResponse(p))
}

// UpdatePerson handles PUT /api/people/{id}.
func (h *CatalogHandler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req catalog.UpdatePersonInput
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.svc.UpdatePerson(r.Context(), id, req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPersonResponse(p))
}

// DeletePerson handles DELETE /api/people/{id}.
func (h *CatalogHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeletePerson(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
