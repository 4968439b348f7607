package domain

import (
	"cmp"
	"fmt"
	"slices"
)

type CommentFilter string

const (
	CommentsNewest      CommentFilter = "newest"
	CommentsPopular     CommentFilter = "popular"
	CommentsMine        CommentFilter = "my_comments"
	CommentsSameOpinion CommentFilter = "same_opinion"
)

func ParseCommentFilter(s string) (CommentFilter, error) {
	switch CommentFilter(s) {
	case CommentsNewest, CommentsPopular, CommentsMine, CommentsSameOpinion:
		return CommentFilter(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// ScoredComment is a comment annotated for display against the viewer's
// ballot.
type ScoredComment struct {
	Comment
	TimeStr string `json:"time_str"`
	// Vote is the single vote shown on one-question rooms.
	Vote string `json:"vote,omitempty"`
	// SameOpinion marks a matching single vote.
	SameOpinion bool `json:"same_opinion"`
	// Affinity and AffinityLabel are only set on multi-question rooms.
	Affinity      *int   `json:"affinity,omitempty"`
	AffinityLabel string `json:"affinity_label,omitempty"`
}

func scoreComment(kind TopicKind, questions []Question, viewer Ballot, c Comment) ScoredComment {
	sc := ScoredComment{Comment: c}
	switch kind {
	case KindSingleChoice, KindSingleChoiceWithDiscussion:
		sc.Vote = c.Vote(questions)
		if len(questions) > 0 {
			mine := viewer[questions[0].ID]
			sc.SameOpinion = mine != "" && sc.Vote == mine
		}
	case KindMultiChoiceWithDiscussion:
		score := AffinityScore(viewer, c.Ballot, questions)
		sc.Affinity = &score
		sc.AffinityLabel = AffinityLabel(score)
		sc.Vote = c.Vote(questions)
	}
	return sc
}

// FilterComments selects and orders comments for the given mode. comments is
// expected newest first and is not modified.
func FilterComments(kind TopicKind, questions []Question, comments []Comment, viewer Ballot, mode CommentFilter) []ScoredComment {
	out := make([]ScoredComment, 0, len(comments))
	for _, c := range comments {
		out = append(out, scoreComment(kind, questions, viewer, c))
	}

	switch mode {
	case CommentsPopular:
		slices.SortStableFunc(out, func(a, b ScoredComment) int { return cmp.Compare(b.Likes, a.Likes) })
	case CommentsMine:
		out = slices.DeleteFunc(out, func(c ScoredComment) bool { return !c.IsViewer })
	case CommentsSameOpinion:
		switch kind {
		case KindSingleChoice, KindSingleChoiceWithDiscussion:
			out = slices.DeleteFunc(out, func(c ScoredComment) bool { return !c.SameOpinion })
		case KindMultiChoiceWithDiscussion:
			out = slices.DeleteFunc(out, func(c ScoredComment) bool { return *c.Affinity < SameOpinionThreshold })
			slices.SortStableFunc(out, func(a, b ScoredComment) int { return cmp.Compare(*b.Affinity, *a.Affinity) })
		}
	}
	return out
}
