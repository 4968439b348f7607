package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/wagle/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/logger"
)

var fixedNow = time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type stubProfiles struct{}

func (stubProfiles) Generate() domain.Profile {
	return domain.Profile{Name: "Happy 🐼 Panda", Color: "bg-green-100"}
}

type mockTopicRepository struct {
	mock.Mock
}

func (m *mockTopicRepository) GetAll(ctx context.Context) ([]domain.Topic, error) {
	args := m.Called(ctx)
	topics, _ := args.Get(0).([]domain.Topic)
	return topics, args.Error(1)
}

func (m *mockTopicRepository) GetByID(ctx context.Context, id domain.TopicID) (*domain.Topic, error) {
	args := m.Called(ctx, id)
	topic, _ := args.Get(0).(*domain.Topic)
	return topic, args.Error(1)
}

func newSeedRoomService() *RoomService {
	return NewRoomService(
		memory.NewTopicRepository(memory.SeedTopics()),
		memory.NewCommentRepository(memory.SeedComments()),
		stubProfiles{},
		logger.Discard(),
		clock,
	)
}

func newTestRoom(topic domain.Topic, comments ...domain.Comment) *Room {
	return newRoom(topic, comments, clock, logger.Discard())
}

func singleChoiceTopic() domain.Topic {
	return domain.Topic{
		ID:     1,
		Kind:   domain.KindSingleChoiceWithDiscussion,
		Status: domain.StatusOpen,
		Questions: []domain.Question{
			{ID: "q1", Options: []string{"Pork", "Pasta"}, Tallies: []int{3, 1}},
		},
	}
}

func multiChoiceTopic() domain.Topic {
	return domain.Topic{
		ID:     2,
		Kind:   domain.KindMultiChoiceWithDiscussion,
		Status: domain.StatusOpen,
		Questions: []domain.Question{
			{ID: "q1", Options: []string{"a", "b"}},
			{ID: "q2", Options: []string{"a", "b"}},
			{ID: "q3", Options: []string{"a", "b"}},
			{ID: "q4", Options: []string{"a", "b"}},
		},
	}
}
