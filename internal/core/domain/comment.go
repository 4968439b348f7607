package domain

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	Author    Profile   `json:"author"`
	IsViewer  bool      `json:"is_me"`
	CreatedAt time.Time `json:"timestamp"`
	Ballot    Ballot    `json:"ballot"`
	Body      string    `json:"content"`
	Likes     int       `json:"likes"`
}

// Vote is the author's answer to the first question, the single vote shown
// on one-question rooms.
func (c Comment) Vote(questions []Question) string {
	if len(questions) == 0 {
		return ""
	}
	return c.Ballot[questions[0].ID]
}

// SeedComment is a comment as stored by a topic source, before an author
// profile and an absolute timestamp are assigned on room entry.
type SeedComment struct {
	ID     uuid.UUID
	Ballot Ballot
	Body   string
	Likes  int
	Age    time.Duration
}
