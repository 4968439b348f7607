package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/wagle/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/logger"
)

func newTestCoordinator() *Coordinator {
	topics := memory.NewTopicRepository(memory.SeedTopics())
	return NewCoordinator(
		NewCatalogService(topics),
		newSeedRoomService(),
		NewSuggestionService(logger.Discard()),
		logger.Discard(),
	)
}

func TestCoordinator_StartsOnCatalog(t *testing.T) {
	c := newTestCoordinator()

	assert.Equal(t, domain.ViewCatalog, c.View())
	assert.Nil(t, c.SelectedTopic())

	_, err := c.Room()
	assert.ErrorIs(t, err, domain.ErrViewNotActive)
}

func TestCoordinator_OpenRoomAndBack(t *testing.T) {
	c := newTestCoordinator()
	ctx := context.Background()

	room, err := c.OpenRoom(ctx, 102)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewRoom, c.View())
	require.NotNil(t, c.SelectedTopic())
	assert.Equal(t, domain.TopicID(102), c.SelectedTopic().ID)

	require.NoError(t, room.CastVote("q1", "Superhero"))

	_, err = c.OpenRoom(ctx, 101)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.ErrorIs(t, c.OpenSuggestion(), domain.ErrInvalidTransition)

	c.Back()
	assert.Equal(t, domain.ViewCatalog, c.View())
	assert.Nil(t, c.SelectedTopic())

	again, err := c.OpenRoom(ctx, 102)
	require.NoError(t, err)
	assert.Equal(t, domain.BallotNotVoted, again.State())
}

func TestCoordinator_OpenRoomUnknownStaysOnCatalog(t *testing.T) {
	c := newTestCoordinator()

	_, err := c.OpenRoom(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrTopicNotFound)
	assert.Equal(t, domain.ViewCatalog, c.View())
}

func TestCoordinator_CatalogStateResetsOnReentry(t *testing.T) {
	c := newTestCoordinator()
	ctx := context.Background()

	require.NoError(t, c.SetShowClosed(true))
	require.NoError(t, c.ToggleFilter("TAG_past stories"))
	require.NoError(t, c.SetSort("popular"))

	view, err := c.Catalog(ctx)
	require.NoError(t, err)
	assert.True(t, view.ShowClosed)
	assert.Len(t, view.Rooms, 1)

	require.NoError(t, c.OpenSuggestion())
	_, err = c.Catalog(ctx)
	assert.ErrorIs(t, err, domain.ErrViewNotActive)
	assert.ErrorIs(t, c.SetSort("newest"), domain.ErrViewNotActive)

	c.Back()
	view, err = c.Catalog(ctx)
	require.NoError(t, err)
	assert.False(t, view.ShowClosed)
	assert.Empty(t, view.ActiveFilters)
	assert.Equal(t, domain.SortNewest, view.Sort)
}

func TestCoordinator_InvalidCatalogInput(t *testing.T) {
	c := newTestCoordinator()

	assert.ErrorIs(t, c.ToggleFilter("whatever"), domain.ErrInvalidFilter)
	assert.ErrorIs(t, c.SetSort("oldest"), domain.ErrInvalidSort)
}

func TestCoordinator_Suggestion(t *testing.T) {
	c := newTestCoordinator()
	ctx := context.Background()

	_, err := c.SubmitSuggestion(ctx, "too early")
	assert.ErrorIs(t, err, domain.ErrViewNotActive)

	require.NoError(t, c.OpenSuggestion())

	_, err = c.SubmitSuggestion(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyBody)
	assert.Nil(t, c.LastSuggestion())

	ack, err := c.SubmitSuggestion(ctx, "Pizza day")
	require.NoError(t, err)
	assert.Equal(t, ack, c.LastSuggestion())

	c.Back()
	assert.Nil(t, c.LastSuggestion())
}

func TestCoordinator_BackOnCatalogIsNoop(t *testing.T) {
	c := newTestCoordinator()
	require.NoError(t, c.SetSort("popular"))

	c.Back()

	view, err := c.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SortPopular, view.Sort)
}
