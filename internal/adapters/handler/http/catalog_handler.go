package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

type showClosedRequest struct {
	ShowClosed bool `json:"show_closed"`
}

type sortRequest struct {
	Sort string `json:"sort"`
}

func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	view, err := coordinatorFrom(r).Catalog(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *CatalogHandler) SetShowClosed(w http.ResponseWriter, r *http.Request) {
	var req showClosedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := coordinatorFrom(r).SetShowClosed(req.ShowClosed); err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.GetCatalog(w, r)
}

func (h *CatalogHandler) ToggleFilter(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if err := coordinatorFrom(r).ToggleFilter(token); err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.GetCatalog(w, r)
}

func (h *CatalogHandler) SetSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := coordinatorFrom(r).SetSort(req.Sort); err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.GetCatalog(w, r)
}
