package http

import (
	"net/http"

	"github.com/vncsmyrnk/wagle/internal/core/domain"
)

type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

type viewResponse struct {
	View            domain.View           `json:"view"`
	SelectedTopicID *domain.TopicID       `json:"selected_topic_id,omitempty"`
	LastSuggestion  *domain.SuggestionAck `json:"last_suggestion,omitempty"`
}

func currentView(r *http.Request) viewResponse {
	coord := coordinatorFrom(r)
	resp := viewResponse{
		View:           coord.View(),
		LastSuggestion: coord.LastSuggestion(),
	}
	if t := coord.SelectedTopic(); t != nil {
		resp.SelectedTopicID = &t.ID
	}
	return resp
}

func (h *NavigationHandler) GetView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currentView(r))
}

func (h *NavigationHandler) Back(w http.ResponseWriter, r *http.Request) {
	coordinatorFrom(r).Back()
	writeJSON(w, http.StatusOK, currentView(r))
}
