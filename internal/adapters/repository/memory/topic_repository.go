package memory

import (
	"context"

	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/core/ports"
)

type topicRepository struct {
	topics []domain.Topic
}

// NewTopicRepository serves a fixed topic list. Callers get copies, so the
// list itself never changes.
func NewTopicRepository(topics []domain.Topic) ports.TopicRepository {
	return &topicRepository{
		topics: topics,
	}
}

func (r *topicRepository) GetAll(ctx context.Context) ([]domain.Topic, error) {
	out := make([]domain.Topic, 0, len(r.topics))
	for _, t := range r.topics {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (r *topicRepository) GetByID(ctx context.Context, id domain.TopicID) (*domain.Topic, error) {
	for _, t := range r.topics {
		if t.ID == id {
			c := t.Clone()
			return &c, nil
		}
	}
	return nil, domain.ErrTopicNotFound
}
