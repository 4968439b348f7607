package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/core/ports"
)

// Coordinator switches between the catalog, suggestion and room views of a
// single viewer. Only the active view has state; entering a view rebuilds it.
type Coordinator struct {
	catalog     ports.CatalogService
	rooms       *RoomService
	suggestions ports.SuggestionService
	log         *slog.Logger

	view     domain.View
	selected *domain.Topic
	query    domain.CatalogQuery
	room     *Room
	lastAck  *domain.SuggestionAck
}

func NewCoordinator(catalog ports.CatalogService, rooms *RoomService, suggestions ports.SuggestionService, log *slog.Logger) *Coordinator {
	c := &Coordinator{
		catalog:     catalog,
		rooms:       rooms,
		suggestions: suggestions,
		log:         log,
	}
	c.enterCatalog()
	return c
}

func (c *Coordinator) enterCatalog() {
	c.view = domain.ViewCatalog
	c.selected = nil
	c.room = nil
	c.lastAck = nil
	c.query = domain.CatalogQuery{Sort: domain.SortNewest}
}

func (c *Coordinator) View() domain.View {
	return c.view
}

// SelectedTopic is the topic passed into the room view, nil outside it.
func (c *Coordinator) SelectedTopic() *domain.Topic {
	if c.selected == nil {
		return nil
	}
	t := c.selected.Clone()
	return &t
}

func (c *Coordinator) Catalog(ctx context.Context) (*domain.CatalogView, error) {
	if c.view != domain.ViewCatalog {
		return nil, fmt.Errorf("%w: %s", domain.ErrViewNotActive, domain.ViewCatalog)
	}
	return c.catalog.Browse(ctx, c.query)
}

func (c *Coordinator) SetShowClosed(show bool) error {
	if c.view != domain.ViewCatalog {
		return fmt.Errorf("%w: %s", domain.ErrViewNotActive, domain.ViewCatalog)
	}
	c.query.ShowClosed = show
	return nil
}

func (c *Coordinator) ToggleFilter(token string) error {
	if c.view != domain.ViewCatalog {
		return fmt.Errorf("%w: %s", domain.ErrViewNotActive, domain.ViewCatalog)
	}
	parsed, err := domain.ParseFilterToken(token)
	if err != nil {
		return err
	}
	c.query.Toggle(parsed)
	return nil
}

func (c *Coordinator) SetSort(mode string) error {
	if c.view != domain.ViewCatalog {
		return fmt.Errorf("%w: %s", domain.ErrViewNotActive, domain.ViewCatalog)
	}
	parsed, err := domain.ParseSortMode(mode)
	if err != nil {
		return err
	}
	c.query.Sort = parsed
	return nil
}

func (c *Coordinator) OpenRoom(ctx context.Context, id domain.TopicID) (*Room, error) {
	if c.view != domain.ViewCatalog {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.view, domain.ViewRoom)
	}

	room, err := c.rooms.Open(ctx, id)
	if err != nil {
		return nil, err
	}

	topic := room.topic.Clone()
	c.view = domain.ViewRoom
	c.selected = &topic
	c.room = room

	c.log.Debug("view changed", slog.String("view", string(c.view)), slog.Int64("topic_id", int64(id)))
	return room, nil
}

func (c *Coordinator) Room() (*Room, error) {
	if c.view != domain.ViewRoom {
		return nil, fmt.Errorf("%w: %s", domain.ErrViewNotActive, domain.ViewRoom)
	}
	return c.room, nil
}

func (c *Coordinator) OpenSuggestion() error {
	if c.view != domain.ViewCatalog {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.view, domain.ViewSuggestion)
	}
	c.view = domain.ViewSuggestion
	c.query = domain.CatalogQuery{}

	c.log.Debug("view changed", slog.String("view", string(c.view)))
	return nil
}

func (c *Coordinator) SubmitSuggestion(ctx context.Context, text string) (*domain.SuggestionAck, error) {
	if c.view != domain.ViewSuggestion {
		return nil, fmt.Errorf("%w: %s", domain.ErrViewNotActive, domain.ViewSuggestion)
	}
	ack, err := c.suggestions.Submit(ctx, text)
	if err != nil {
		return nil, err
	}
	c.lastAck = ack
	return ack, nil
}

// LastSuggestion is the acknowledgment shown on the suggestion view.
func (c *Coordinator) LastSuggestion() *domain.SuggestionAck {
	return c.lastAck
}

// Back returns to the catalog from any other view, discarding that view's
// state. On the catalog it does nothing.
func (c *Coordinator) Back() {
	if c.view == domain.ViewCatalog {
		return
	}
	c.enterCatalog()
	c.log.Debug("view changed", slog.String("view", string(c.view)))
}
