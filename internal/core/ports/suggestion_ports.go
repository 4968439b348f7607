package ports

import (
	"context"

	"github.com/vncsmyrnk/wagle/internal/core/domain"
)

type SuggestionService interface {
	Submit(ctx context.Context, text string) (*domain.SuggestionAck, error)
}
