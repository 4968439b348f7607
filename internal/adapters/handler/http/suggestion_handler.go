package http

import (
	"net/http"
)

type SuggestionHandler struct{}

func NewSuggestionHandler() *SuggestionHandler {
	return &SuggestionHandler{}
}

type suggestionRequest struct {
	Text string `json:"text"`
}

func (h *SuggestionHandler) Open(w http.ResponseWriter, r *http.Request) {
	if err := coordinatorFrom(r).OpenSuggestion(); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, currentView(r))
}

func (h *SuggestionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ack, err := coordinatorFrom(r).SubmitSuggestion(r.Context(), req.Text)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ack)
}
