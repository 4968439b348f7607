package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/wagle/internal/adapters/profile"
	"github.com/vncsmyrnk/wagle/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/core/services"
	"github.com/vncsmyrnk/wagle/internal/logger"
)

type testClient struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
}

func newTestStore(ttl time.Duration) *SessionStore {
	topics := memory.NewTopicRepository(memory.SeedTopics())
	comments := memory.NewCommentRepository(memory.SeedComments())
	log := logger.Discard()

	catalogService := services.NewCatalogService(topics)
	roomService := services.NewRoomService(topics, comments, profile.NewGenerator(1), log, nil)
	suggestionService := services.NewSuggestionService(log)

	return NewSessionStore(ttl, func() *services.Coordinator {
		return services.NewCoordinator(catalogService, roomService, suggestionService, log)
	})
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()

	server := httptest.NewServer(NewHandler(newTestStore(time.Hour), RouterConfig{AllowedOrigins: []string{"*"}}))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testClient{t: t, server: server, client: &http.Client{Jar: jar}}
}

func (c *testClient) do(method, path string, body any, out any) int {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	c := newTestClient(t)
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/health", nil, nil))
}

func TestCatalogEndpoints(t *testing.T) {
	c := newTestClient(t)

	var view domain.CatalogView
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/catalog", nil, &view))
	assert.Len(t, view.Rooms, 4)
	assert.Equal(t, domain.SortNewest, view.Sort)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/catalog/filters/TAG_HOT", nil, &view))
	assert.Len(t, view.Rooms, 2)
	assert.Equal(t, []domain.FilterToken{"TAG_HOT"}, view.ActiveFilters)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/catalog/sort", map[string]string{"sort": "popular"}, &view))
	assert.Equal(t, domain.TopicID(101), view.Rooms[0].ID)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/catalog/closed", map[string]bool{"show_closed": true}, &view))
	assert.True(t, view.Empty)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/catalog/filters/bogus", nil, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/catalog/sort", map[string]string{"sort": "oldest"}, nil))
}

func TestRoomFlow(t *testing.T) {
	c := newTestClient(t)

	assert.Equal(t, http.StatusConflict, c.do(http.MethodGet, "/api/room", nil, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/api/rooms/999", nil, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/rooms/abc", nil, nil))

	var room domain.RoomView
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/rooms/105", nil, &room))
	assert.Equal(t, domain.BallotNotVoted, room.State)
	assert.False(t, room.FeedUnlocked)

	var nav viewResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/view", nil, &nav))
	assert.Equal(t, domain.ViewRoom, nav.View)
	require.NotNil(t, nav.SelectedTopicID)
	assert.Equal(t, domain.TopicID(105), *nav.SelectedTopicID)

	assert.Equal(t, http.StatusConflict, c.do(http.MethodGet, "/api/catalog", nil, nil))
	assert.Equal(t, http.StatusLocked, c.do(http.MethodPost, "/api/room/comments", map[string]string{"body": "hi"}, nil))

	var feed domain.FeedView
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/room/comments", nil, &feed))
	assert.True(t, feed.Locked)

	require.Equal(t, http.StatusOK, c.do(http.MethodPut, "/api/room/answers/q1", map[string]string{"option": "Cafe"}, &room))
	assert.Equal(t, domain.BallotVoting, room.State)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPut, "/api/room/answers/q2", map[string]string{"option": "Opera"}, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPut, "/api/room/answers/q9", map[string]string{"option": "Cafe"}, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, c.do(http.MethodPost, "/api/room/submit", nil, nil))

	for q, opt := range map[string]string{"q2": "Dance", "q3": "Friday", "q4": "Red"} {
		require.Equal(t, http.StatusOK, c.do(http.MethodPut, "/api/room/answers/"+q, map[string]string{"option": opt}, nil))
	}
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/room/submit", nil, &room))
	assert.Equal(t, domain.BallotVoted, room.State)
	assert.Len(t, room.Results, 4)

	var results []domain.QuestionResult
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/room/results", nil, &results))
	assert.Equal(t, 41, results[0].Series[0].Value)

	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/room/comments?filter=same_opinion", nil, &feed))
	require.NotEmpty(t, feed.Comments)
	assert.Equal(t, 100, *feed.Comments[0].Affinity)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/api/room/comments?filter=oldest", nil, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, c.do(http.MethodPost, "/api/room/comments", map[string]string{"body": "  "}, nil))

	var posted domain.FeedView
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/room/comments", map[string]string{"body": "Cafe all the way"}, &posted))
	assert.Equal(t, domain.CommentsNewest, posted.Filter)
	require.Len(t, posted.Comments, 5)
	assert.Equal(t, "Cafe all the way", posted.Comments[0].Body)
	assert.True(t, posted.Comments[0].IsViewer)

	var back viewResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/back", nil, &back))
	assert.Equal(t, domain.ViewCatalog, back.View)
	assert.Nil(t, back.SelectedTopicID)

	var reopened domain.RoomView
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/rooms/105", nil, &reopened))
	assert.Equal(t, domain.BallotNotVoted, reopened.State)
	assert.Empty(t, reopened.Ballot)
}

func TestSingleVoteAndClosedRoom(t *testing.T) {
	c := newTestClient(t)

	var room domain.RoomView
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/rooms/102", nil, &room))
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/room/vote", map[string]string{"question_id": "q1", "option": "Pajamas"}, &room))
	assert.Equal(t, domain.BallotVoted, room.State)
	assert.False(t, room.FeedAvailable)
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/room/comments", map[string]string{"body": "hi"}, nil))

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/back", nil, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/rooms/104", nil, &room))
	assert.True(t, room.Closed)
	assert.Equal(t, http.StatusNoContent, c.do(http.MethodPost, "/api/room/comments", map[string]string{"body": "late"}, nil))
}

func TestSuggestionFlow(t *testing.T) {
	c := newTestClient(t)

	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/suggestion/submit", map[string]string{"text": "x"}, nil))

	var nav viewResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/suggestion", nil, &nav))
	assert.Equal(t, domain.ViewSuggestion, nav.View)

	assert.Equal(t, http.StatusUnprocessableEntity, c.do(http.MethodPost, "/api/suggestion/submit", map[string]string{"text": " "}, nil))

	var ack domain.SuggestionAck
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/suggestion/submit", map[string]string{"text": " Pizza day "}, &ack))
	assert.Equal(t, "Pizza day", ack.Text)

	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/rooms/101", nil, nil))
}

func TestSessionsAreIsolated(t *testing.T) {
	a := newTestClient(t)
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	b := &testClient{t: t, server: a.server, client: &http.Client{Jar: jar}}

	require.Equal(t, http.StatusOK, a.do(http.MethodPost, "/api/rooms/101", nil, nil))

	var nav viewResponse
	require.Equal(t, http.StatusOK, b.do(http.MethodGet, "/api/view", nil, &nav))
	assert.Equal(t, domain.ViewCatalog, nav.View)
}

func TestInvalidBody(t *testing.T) {
	c := newTestClient(t)

	req, err := http.NewRequest(http.MethodPost, c.server.URL+"/api/catalog/sort", bytes.NewBufferString("{"))
	require.NoError(t, err)
	resp, err := c.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "invalid request body", body.Message)
}
