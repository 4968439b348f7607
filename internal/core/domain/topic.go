package domain

import (
	"fmt"
	"slices"
	"time"
)

type TopicID int64

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

// TopicKind selects which of ballot and discussion a room offers.
type TopicKind int

const (
	KindDiscussion TopicKind = iota
	KindSingleChoice
	KindSingleChoiceWithDiscussion
	KindMultiChoiceWithDiscussion
)

var topicKindNames = map[TopicKind]string{
	KindDiscussion:                 "discuss",
	KindSingleChoice:               "choice",
	KindSingleChoiceWithDiscussion: "choice_discuss",
	KindMultiChoiceWithDiscussion:  "multi_choice_discuss",
}

func ParseTopicKind(s string) (TopicKind, error) {
	for k, name := range topicKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown topic kind %q", s)
}

func (k TopicKind) String() string {
	if name, ok := topicKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TopicKind(%d)", int(k))
}

func (k TopicKind) MarshalText() ([]byte, error) {
	name, ok := topicKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown topic kind %d", int(k))
	}
	return []byte(name), nil
}

func (k *TopicKind) UnmarshalText(text []byte) error {
	parsed, err := ParseTopicKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k TopicKind) HasBallot() bool {
	return k != KindDiscussion
}

func (k TopicKind) HasDiscussion() bool {
	return k != KindSingleChoice
}

type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	// Tallies holds the vote count per option, in option order.
	Tallies []int `json:"tallies"`
}

func (q Question) HasOption(option string) bool {
	return slices.Contains(q.Options, option)
}

type Topic struct {
	ID           TopicID    `json:"id"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	Kind         TopicKind  `json:"kind"`
	Labels       []string   `json:"labels"`
	Participants int        `json:"participants"`
	Comments     int        `json:"comments"`
	Status       Status     `json:"status"`
	Participated bool       `json:"has_participated"`
	Color        string     `json:"color"`
	Icon         string     `json:"icon"`
	EndDate      string     `json:"end_date"`
	CreatedAt    time.Time  `json:"created_at"`
	Questions    []Question `json:"questions"`
	// PriorBallot is what the viewer answered on an earlier visit. Only
	// meaningful when Participated is set.
	PriorBallot Ballot `json:"-"`
}

func (t Topic) Closed() bool {
	return t.Status == StatusClosed
}

func (t Topic) HasLabel(label string) bool {
	return slices.Contains(t.Labels, label)
}

func (t Topic) Question(id string) (Question, bool) {
	for _, q := range t.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Clone returns a copy that shares no slices or maps with t.
func (t Topic) Clone() Topic {
	c := t
	c.Labels = slices.Clone(t.Labels)
	c.Questions = make([]Question, len(t.Questions))
	for i, q := range t.Questions {
		q.Options = slices.Clone(q.Options)
		q.Tallies = slices.Clone(q.Tallies)
		c.Questions[i] = q
	}
	c.PriorBallot = t.PriorBallot.Clone()
	return c
}
