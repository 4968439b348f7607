package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/core/ports"
)

type RoomService struct {
	topics   ports.TopicRepository
	comments ports.CommentRepository
	profiles ports.ProfileGenerator
	log      *slog.Logger
	now      func() time.Time
}

// NewRoomService wires the sources a room is built from. A nil clock means
// time.Now.
func NewRoomService(topics ports.TopicRepository, comments ports.CommentRepository, profiles ports.ProfileGenerator, log *slog.Logger, now func() time.Time) *RoomService {
	if now == nil {
		now = time.Now
	}
	return &RoomService{
		topics:   topics,
		comments: comments,
		profiles: profiles,
		log:      log,
		now:      now,
	}
}

// Open builds a fresh room for the topic. Seed comments get a random author
// profile and a timestamp relative to the moment of entry.
func (s *RoomService) Open(ctx context.Context, id domain.TopicID) (*Room, error) {
	topic, err := s.topics.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	seeds, err := s.comments.ListSeed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments for topic %d: %w", id, err)
	}

	entered := s.now()
	comments := make([]domain.Comment, 0, len(seeds))
	for _, sc := range seeds {
		comments = append(comments, domain.Comment{
			ID:        sc.ID,
			Author:    s.profiles.Generate(),
			CreatedAt: entered.Add(-sc.Age),
			Ballot:    sc.Ballot.Clone(),
			Body:      sc.Body,
			Likes:     sc.Likes,
		})
	}

	return newRoom(topic.Clone(), comments, s.now, s.log), nil
}
