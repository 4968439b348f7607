package domain

import (
	"time"

	"github.com/google/uuid"
)

type View string

const (
	ViewCatalog    View = "catalog"
	ViewSuggestion View = "suggestion"
	ViewRoom       View = "room"
)

type CatalogView struct {
	Title         string        `json:"title"`
	ShowClosed    bool          `json:"show_closed"`
	Sort          SortMode      `json:"sort"`
	ActiveFilters []FilterToken `json:"active_filters"`
	AvailableTags []string      `json:"available_tags"`
	Rooms         []Topic       `json:"rooms"`
	// Empty is set when nothing matched, so the "no matching rooms" state is
	// shown instead of a blank list.
	Empty bool `json:"empty"`
}

type SeriesPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type QuestionResult struct {
	QuestionID string        `json:"question_id"`
	Prompt     string        `json:"prompt"`
	Series     []SeriesPoint `json:"series"`
	Total      int           `json:"total"`
}

type FeedView struct {
	Available bool            `json:"available"`
	Locked    bool            `json:"locked"`
	Filter    CommentFilter   `json:"filter"`
	Comments  []ScoredComment `json:"comments"`
	Empty     bool            `json:"empty"`
}

type RoomView struct {
	Topic         Topic            `json:"topic"`
	Closed        bool             `json:"closed"`
	State         BallotState      `json:"state"`
	Ballot        Ballot           `json:"ballot"`
	FeedAvailable bool             `json:"feed_available"`
	FeedUnlocked  bool             `json:"feed_unlocked"`
	Results       []QuestionResult `json:"results,omitempty"`
}

type SuggestionAck struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at"`
}
