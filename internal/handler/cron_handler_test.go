package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vglist/backend/internal/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cronRequest(env *testEnv, secret string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/cron/seed", nil)
	if secret != "" {
		req.Header.Set("Authorization", "Bearer "+secret)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestSeedEndpoint(t *testing.T) {
	t.Run("requires the cron secret", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Equal(t, http.StatusUnauthorized, cronRequest(env, "").Code)
		assert.Equal(t, http.StatusUnauthorized, cronRequest(env, "wrong").Code)
		assert.Zero(t, env.seeder.calls)
	})

	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		env.seeder.result = ingest.Result{Pages: 600, Games: 1200, Duration: 3 * time.Second}

		w := cronRequest(env, testCronSecret)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[SeedResponse](t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, 600, resp.Pages)
		assert.Equal(t, int64(1200), resp.Games)
		assert.Equal(t, int64(3000), resp.DurationMS)
		assert.Equal(t, 1, env.seeder.calls)
	})

	t.Run("failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.seeder.err = errors.New(`fetch games page 3: unexpected status 500: {"message": "upstream detail"}`)

		w := cronRequest(env, testCronSecret)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "catalog ingestion failed"}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "upstream detail")
	})

	t.Run("not configured", func(t *testing.T) {
		env := newTestEnv(t, withoutSeeder())
		w := cronRequest(env, testCronSecret)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, decode[SeedResponse](t, w).Success)
	})
}
