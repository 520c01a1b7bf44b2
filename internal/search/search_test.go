package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vglist/backend/internal/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgoliaSaveGames(t *testing.T) {
	var got struct {
		Requests []struct {
			Action string         `json:"action"`
			Body   map[string]any `json:"body"`
		} `json:"requests"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/indexes/games/batch", r.URL.Path)
		assert.Equal(t, "app", r.Header.Get("X-Algolia-Application-Id"))
		assert.Equal(t, "key", r.Header.Get("X-Algolia-API-Key"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`{"taskID": 1, "objectIDs": ["2607"]}`))
	}))
	defer srv.Close()

	c := NewAlgoliaClient(AlgoliaConfig{AppID: "app", APIKey: "key", Index: "games", BaseURL: srv.URL}, srv.Client())
	err := c.SaveGames(context.Background(), []models.Game{{ID: 2607, Name: "Zelda", Slug: "zelda"}})
	require.NoError(t, err)

	require.Len(t, got.Requests, 1)
	assert.Equal(t, "updateObject", got.Requests[0].Action)
	assert.Equal(t, "2607", got.Requests[0].Body["objectID"])
	assert.Equal(t, "zelda", got.Requests[0].Body["slug"])
}

func TestAlgoliaSaveGamesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewAlgoliaClient(AlgoliaConfig{AppID: "app", Index: "games", BaseURL: srv.URL}, srv.Client())
	err := c.SaveGames(context.Background(), []models.Game{{ID: 1}})
	assert.ErrorContains(t, err, "403")
}

func TestAlgoliaSaveGamesEmptyPageIsNoop(t *testing.T) {
	c := NewAlgoliaClient(AlgoliaConfig{AppID: "app", BaseURL: "http://127.0.0.1:1"}, nil)
	assert.NoError(t, c.SaveGames(context.Background(), nil))
}

func TestMemoryIndexReplacesByObjectID(t *testing.T) {
	idx := NewMemoryIndex()
	ctx := context.Background()
	require.NoError(t, idx.SaveGames(ctx, []models.Game{{ID: 1, Name: "old"}}))
	require.NoError(t, idx.SaveGames(ctx, []models.Game{{ID: 1, Name: "new"}, {ID: 2}}))

	assert.Equal(t, 2, idx.Len())
	d, ok := idx.Get("1")
	require.True(t, ok)
	assert.Equal(t, "new", d.Name)
}
