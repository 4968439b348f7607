package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/core/ports"
)

type suggestionService struct {
	log *slog.Logger
	now func() time.Time
}

func NewSuggestionService(log *slog.Logger) ports.SuggestionService {
	return &suggestionService{
		log: log,
		now: time.Now,
	}
}

// Submit acknowledges a topic suggestion. The text is only logged; nothing
// is forwarded or stored.
func (s *suggestionService) Submit(ctx context.Context, text string) (*domain.SuggestionAck, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyBody
	}

	ack := &domain.SuggestionAck{
		ID:         uuid.New(),
		Text:       text,
		ReceivedAt: s.now(),
	}

	s.log.InfoContext(ctx, "topic suggestion received",
		slog.String("suggestion_id", ack.ID.String()),
		slog.Int("length", len(text)),
	)
	return ack, nil
}
