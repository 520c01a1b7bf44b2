package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vglist/backend/internal/apperr"
	"vglist/backend/internal/hub"
	"vglist/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewLifecycle(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/reviews", "fakeId", obj{"game_id": 2607, "description": "A classic.", "score": 4.5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[ReviewResponse](t, w)
	require.NotNil(t, created.Score)
	assert.Equal(t, 9, *created.Score)
	path := fmt.Sprintf("/api/v1/reviews/%d", created.ID)

	w = env.do(http.MethodPut, path, "otherId", obj{"description": "hijacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodPut, path, "fakeId", obj{"description": "Still a classic."})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[ReviewResponse](t, w)
	assert.Equal(t, "Still a classic.", updated.Description)
	assert.Equal(t, 9, *updated.Score, "score untouched when omitted")

	w = env.do(http.MethodPut, path, "fakeId", obj{"score": 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, *decode[ReviewResponse](t, w).Score)

	w = env.do(http.MethodDelete, path, "fakeId", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, env.count(&models.Review{}))
}

func TestCreateReviewValidation(t *testing.T) {
	tests := []struct {
		name string
		body obj
	}{
		{name: "empty description", body: obj{"game_id": 2607, "description": ""}},
		{name: "description too long", body: obj{"game_id": 2607, "description": strings.Repeat("a", 10001)}},
		{name: "bad score", body: obj{"game_id": 2607, "description": "ok", "score": 4.2}},
		{name: "missing game", body: obj{"description": "ok"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			w := env.do(http.MethodPost, "/api/v1/reviews", "fakeId", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Zero(t, env.count(&models.Review{}))
		})
	}

	t.Run("score is optional", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(http.MethodPost, "/api/v1/reviews", "fakeId", obj{"game_id": 2607, "description": "No score."})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Nil(t, decode[ReviewResponse](t, w).Score)
	})

	t.Run("update rejects empty description", func(t *testing.T) {
		env := newTestEnv(t)
		created := decode[ReviewResponse](t, env.do(http.MethodPost, "/api/v1/reviews", "fakeId", obj{"game_id": 2607, "description": "ok"}))
		w := env.do(http.MethodPut, fmt.Sprintf("/api/v1/reviews/%d", created.ID), "fakeId", obj{"description": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReviewListingsHydrateAuthors(t *testing.T) {
	env := newTestEnv(t)
	for _, author := range []string{"fakeId", "otherId", "fakeId"} {
		require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/v1/reviews", author, obj{"game_id": 2607, "description": "review by " + author}).Code)
	}
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/v1/reviews", "otherId", obj{"game_id": 1020, "description": "other game"}).Code)

	t.Run("by game", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/v1/reviews?game_id=2607&limit=2", "", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		page := decode[PaginatedResponse[ReviewResponse]](t, w)
		require.Len(t, page.Items, 2)
		assert.Equal(t, uint(3), page.Items[0].ID)
		require.NotNil(t, page.Items[1].Author)
		assert.Equal(t, "other", *page.Items[1].Author.Username)
		require.NotNil(t, page.NextCursor)
		assert.Equal(t, int64(1), *page.NextCursor)

		assert.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/api/v1/reviews", "", nil).Code)
	})

	t.Run("by username", func(t *testing.T) {
		page := decode[PaginatedResponse[ReviewResponse]](t, env.do(http.MethodGet, "/api/v1/users/other/reviews", "", nil))
		require.Len(t, page.Items, 2)
		assert.Equal(t, "other game", page.Items[0].Description)
		require.NotNil(t, page.Items[0].Game)
		assert.Equal(t, "grand-theft-auto-v", page.Items[0].Game.Slug)

		empty := decode[PaginatedResponse[ReviewResponse]](t, env.do(http.MethodGet, "/api/v1/users/nobody/reviews", "", nil))
		assert.Empty(t, empty.Items)
	})

	t.Run("count", func(t *testing.T) {
		assert.Equal(t, "2", env.do(http.MethodGet, "/api/v1/users/fake/reviews/count", "", nil).Body.String())
		assert.Equal(t, "0", env.do(http.MethodGet, "/api/v1/users/nobody/reviews/count", "", nil).Body.String())
	})

	t.Run("lookup", func(t *testing.T) {
		assert.Equal(t, "null", env.do(http.MethodGet, "/api/v1/reviews/lookup", "", nil).Body.String())
		w := env.do(http.MethodGet, "/api/v1/reviews/lookup?author_id=fakeId&game_id=2607", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		found := decode[ReviewResponse](t, w)
		assert.Equal(t, uint(3), found.ID)
		require.NotNil(t, found.Author)
		assert.Equal(t, "fakeId", found.Author.ID)
	})

	t.Run("recent", func(t *testing.T) {
		recent := decode[[]ReviewResponse](t, env.do(http.MethodGet, "/api/v1/reviews/recent", "", nil))
		require.Len(t, recent, 4)
		assert.Equal(t, uint(4), recent[0].ID)
		for _, r := range recent {
			assert.NotNil(t, r.Author)
			assert.NotNil(t, r.Game)
		}
	})
}

func TestRecentReviewsFailWhenAnAuthorIsUnknown(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/v1/reviews", "fakeId", obj{"game_id": 2607, "description": "known"}).Code)
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/v1/reviews", "ghostId", obj{"game_id": 2607, "description": "unknown"}).Code)

	w := env.do(http.MethodGet, "/api/v1/reviews/recent", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperr.KindInternal, decode[ErrorResponse](t, w).Code)

	w = env.do(http.MethodGet, "/api/v1/reviews?game_id=2607", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStreamReviewsPushesCreatedReviews(t *testing.T) {
	env := newTestEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		env.router.ServeHTTP(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return env.hub.Subscribers(hub.ReviewsTopic) == 1 },
		2*time.Second, 10*time.Millisecond)

	w := env.do(http.MethodPost, "/api/v1/reviews", "fakeId", obj{"game_id": 2607, "description": "Live!"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Give the stream a moment to write the event before disconnecting.
	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop after the client left")
	}

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/event-stream"))
	assert.Contains(t, body, "event:review")
	assert.Contains(t, body, ReviewCreatedEvent)
	assert.Contains(t, body, "Live!")
	assert.Equal(t, 0, env.hub.Subscribers(hub.ReviewsTopic))
}
