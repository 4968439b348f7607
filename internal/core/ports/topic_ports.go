package ports

import (
	"context"

	"github.com/vncsmyrnk/wagle/internal/core/domain"
)

// TopicRepository is a read-only topic source.
type TopicRepository interface {
	GetAll(ctx context.Context) ([]domain.Topic, error)
	GetByID(ctx context.Context, id domain.TopicID) (*domain.Topic, error)
}

type CatalogService interface {
	Browse(ctx context.Context, query domain.CatalogQuery) (*domain.CatalogView, error)
}
