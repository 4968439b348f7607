package services

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/wagle/internal/core/domain"
)

var viewerProfile = domain.Profile{Name: "me (anonymous)", Color: "bg-blue-50"}

// Room is the state of one open discussion room. It is built on entry and
// thrown away when the viewer leaves; nothing here outlives the view.
// A Room is not safe for concurrent use.
type Room struct {
	topic    domain.Topic
	state    domain.BallotState
	ballot   domain.Ballot
	comments []domain.Comment
	filter   domain.CommentFilter
	now      func() time.Time
	log      *slog.Logger
}

func newRoom(topic domain.Topic, comments []domain.Comment, now func() time.Time, log *slog.Logger) *Room {
	for i := range topic.Questions {
		q := &topic.Questions[i]
		if len(q.Tallies) < len(q.Options) {
			q.Tallies = append(q.Tallies, make([]int, len(q.Options)-len(q.Tallies))...)
		}
	}

	r := &Room{
		topic:    topic,
		state:    domain.BallotNotVoted,
		ballot:   domain.Ballot{},
		comments: comments,
		filter:   domain.CommentsNewest,
		now:      now,
		log:      log.With(slog.Int64("topic_id", int64(topic.ID))),
	}
	if topic.Participated {
		r.ballot = topic.PriorBallot.Clone()
		r.state = domain.BallotVoted
	}
	if topic.Closed() || len(topic.Questions) == 0 {
		r.state = domain.BallotVoted
	}
	return r
}

func (r *Room) TopicID() domain.TopicID {
	return r.topic.ID
}

func (r *Room) State() domain.BallotState {
	return r.state
}

func (r *Room) Ballot() domain.Ballot {
	return r.ballot.Clone()
}

func (r *Room) CommentCount() int {
	return len(r.comments)
}

func (r *Room) FeedAvailable() bool {
	return r.topic.Kind.HasDiscussion()
}

// FeedUnlocked reports whether the comment feed may be shown: after voting,
// on closed topics and on topics without questions.
func (r *Room) FeedUnlocked() bool {
	return r.state == domain.BallotVoted || r.topic.Closed() || len(r.topic.Questions) == 0
}

// RecordAnswer sets the answer to one question, replacing any earlier one.
// It does nothing on closed topics or once the ballot is submitted.
func (r *Room) RecordAnswer(questionID, option string) error {
	if r.topic.Closed() || r.state == domain.BallotVoted {
		return nil
	}

	q, ok := r.topic.Question(questionID)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownQuestion, questionID)
	}
	if !q.HasOption(option) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidOption, option)
	}

	r.ballot[questionID] = option
	r.state = domain.BallotVoting
	return nil
}

// Submit closes the ballot. It fails with ErrIncompleteBallot, leaving the
// ballot untouched, until every question has an answer.
func (r *Room) Submit() error {
	if r.topic.Closed() || r.state == domain.BallotVoted {
		return nil
	}

	answered := r.ballot.Answered(r.topic.Questions)
	if answered < len(r.topic.Questions) {
		return fmt.Errorf("%w: %d of %d answered", domain.ErrIncompleteBallot, answered, len(r.topic.Questions))
	}

	for i := range r.topic.Questions {
		q := &r.topic.Questions[i]
		if idx := slices.Index(q.Options, r.ballot[q.ID]); idx >= 0 {
			q.Tallies[idx]++
		}
	}
	r.topic.Participated = true
	r.state = domain.BallotVoted

	r.log.Info("ballot submitted", slog.Int("answers", answered))
	return nil
}

// CastVote answers one question and submits straight away, the one-click
// vote of single-question rooms.
func (r *Room) CastVote(questionID, option string) error {
	if err := r.RecordAnswer(questionID, option); err != nil {
		return err
	}
	return r.Submit()
}

func (r *Room) Filter() domain.CommentFilter {
	return r.filter
}

func (r *Room) SetFilter(mode domain.CommentFilter) {
	r.filter = mode
}

func (r *Room) Feed() domain.FeedView {
	fv := domain.FeedView{
		Available: r.FeedAvailable(),
		Filter:    r.filter,
		Comments:  []domain.ScoredComment{},
	}
	if !fv.Available {
		return fv
	}
	if !r.FeedUnlocked() {
		fv.Locked = true
		return fv
	}

	now := r.now()
	scored := domain.FilterComments(r.topic.Kind, r.topic.Questions, r.comments, r.ballot, r.filter)
	for i := range scored {
		scored[i].TimeStr = humanize.RelTime(scored[i].CreatedAt, now, "ago", "from now")
	}
	fv.Comments = scored
	fv.Empty = len(scored) == 0
	return fv
}

// PostComment prepends the viewer's comment with a snapshot of the current
// ballot and switches the feed back to newest first. Closed topics ignore
// the call and return a nil comment.
func (r *Room) PostComment(body string) (*domain.Comment, error) {
	if r.topic.Closed() {
		return nil, nil
	}
	if !r.FeedAvailable() {
		return nil, domain.ErrFeedUnavailable
	}
	if !r.FeedUnlocked() {
		return nil, domain.ErrFeedLocked
	}
	if strings.TrimSpace(body) == "" {
		return nil, domain.ErrEmptyBody
	}

	c := domain.Comment{
		ID:        uuid.New(),
		Author:    viewerProfile,
		IsViewer:  true,
		CreatedAt: r.now(),
		Ballot:    r.ballot.Clone(),
		Body:      body,
	}
	r.comments = append([]domain.Comment{c}, r.comments...)
	r.filter = domain.CommentsNewest

	r.log.Debug("comment posted", slog.String("comment_id", c.ID.String()))
	posted := c
	posted.Ballot = c.Ballot.Clone()
	return &posted, nil
}

// Results is the per-question vote series fed to the results chart.
func (r *Room) Results() []domain.QuestionResult {
	results := make([]domain.QuestionResult, 0, len(r.topic.Questions))
	for _, q := range r.topic.Questions {
		res := domain.QuestionResult{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Series:     make([]domain.SeriesPoint, 0, len(q.Options)),
		}
		for i, opt := range q.Options {
			res.Series = append(res.Series, domain.SeriesPoint{Label: opt, Value: q.Tallies[i]})
			res.Total += q.Tallies[i]
		}
		results = append(results, res)
	}
	return results
}

func (r *Room) View() domain.RoomView {
	v := domain.RoomView{
		Topic:         r.topic.Clone(),
		Closed:        r.topic.Closed(),
		State:         r.state,
		Ballot:        r.ballot.Clone(),
		FeedAvailable: r.FeedAvailable(),
		FeedUnlocked:  r.FeedUnlocked(),
	}
	if r.topic.Kind.HasBallot() && r.state == domain.BallotVoted {
		v.Results = r.Results()
	}
	return v
}
