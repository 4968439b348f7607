package memory

import (
	"context"

	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/core/ports"
)

type commentRepository struct {
	seeds map[domain.TopicID][]domain.SeedComment
}

func NewCommentRepository(seeds map[domain.TopicID][]domain.SeedComment) ports.CommentRepository {
	return &commentRepository{
		seeds: seeds,
	}
}

func (r *commentRepository) ListSeed(ctx context.Context, topicID domain.TopicID) ([]domain.SeedComment, error) {
	seeds := r.seeds[topicID]
	out := make([]domain.SeedComment, 0, len(seeds))
	for _, s := range seeds {
		s.Ballot = s.Ballot.Clone()
		out = append(out, s)
	}
	return out, nil
}
