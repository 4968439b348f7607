package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/wagle/internal/core/domain"
)

type RoomHandler struct{}

func NewRoomHandler() *RoomHandler {
	return &RoomHandler{}
}

type answerRequest struct {
	Option string `json:"option"`
}

type voteRequest struct {
	QuestionID string `json:"question_id"`
	Option     string `json:"option"`
}

type commentRequest struct {
	Body string `json:"body"`
}

func (h *RoomHandler) OpenRoom(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDomainError(w, r, fmt.Errorf("%w: %s", domain.ErrInvalidTopicID, chi.URLParam(r, "id")))
		return
	}

	room, err := coordinatorFrom(r).OpenRoom(r.Context(), domain.TopicID(id))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, room.View())
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := coordinatorFrom(r).Room()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, room.View())
}

func (h *RoomHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	room, err := coordinatorFrom(r).Room()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := room.RecordAnswer(chi.URLParam(r, "questionID"), req.Option); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, room.View())
}

func (h *RoomHandler) Submit(w http.ResponseWriter, r *http.Request) {
	room, err := coordinatorFrom(r).Room()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := room.Submit(); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, room.View())
}

func (h *RoomHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	room, err := coordinatorFrom(r).Room()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	var req voteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := room.CastVote(req.QuestionID, req.Option); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, room.View())
}

func (h *RoomHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	room, err := coordinatorFrom(r).Room()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, room.Results())
}

// GetComments renders the feed, switching the active filter first when a
// filter query parameter is given.
func (h *RoomHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	room, err := coordinatorFrom(r).Room()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if f := r.URL.Query().Get("filter"); f != "" {
		mode, err := domain.ParseCommentFilter(f)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		room.SetFilter(mode)
	}
	writeJSON(w, http.StatusOK, room.Feed())
}

func (h *RoomHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	room, err := coordinatorFrom(r).Room()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := room.PostComment(req.Body)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if comment == nil {
		// read-only room
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, room.Feed())
}
