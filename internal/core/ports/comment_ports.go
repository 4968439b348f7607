package ports

import (
	"context"

	"github.com/vncsmyrnk/wagle/internal/core/domain"
)

// CommentRepository supplies the comments a room starts with.
type CommentRepository interface {
	ListSeed(ctx context.Context, topicID domain.TopicID) ([]domain.SeedComment, error)
}

type ProfileGenerator interface {
	Generate() domain.Profile
}
