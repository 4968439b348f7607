package domain

import "errors"

var (
	ErrTopicNotFound     = errors.New("topic not found")
	ErrInvalidTopicID    = errors.New("invalid topic id")
	ErrUnknownQuestion   = errors.New("question does not belong to this topic")
	ErrInvalidOption     = errors.New("invalid option for this question")
	ErrIncompleteBallot  = errors.New("every question must be answered before submitting")
	ErrEmptyBody         = errors.New("text must not be empty")
	ErrFeedLocked        = errors.New("vote first to unlock the discussion")
	ErrFeedUnavailable   = errors.New("this room has no discussion")
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrInvalidSort       = errors.New("invalid sort mode")
	ErrInvalidTransition = errors.New("invalid view transition")
	ErrViewNotActive     = errors.New("view is not active")
)
