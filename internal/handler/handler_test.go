package handler

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"vglist/backend/internal/hub"
	"vglist/backend/internal/identity"
	"vglist/backend/internal/ingest"
	"vglist/backend/internal/ratelimit"
	"vglist/backend/internal/repository"
	"vglist/backend/internal/testutil"
	"vglist/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"k8s.io/utils/ptr"
)

const (
	testJWTSecret  = "test-secret"
	testCronSecret = "cron-secret"
)

type stubRunner struct {
	result ingest.Result
	err    error
	calls  int
}

func (s *stubRunner) Run(context.Context) (ingest.Result, error) {
	s.calls++
	return s.result, s.err
}

type testEnv struct {
	t      *testing.T
	db     *gorm.DB
	users  *identity.MemoryDirectory
	hub    *hub.Hub
	seeder *stubRunner
	router *gin.Engine
}

type envOption func(*RouterConfig, *Deps)

func withLimiter(l ratelimit.Limiter) envOption {
	return func(cfg *RouterConfig, _ *Deps) { cfg.Limiter = l }
}

func withoutSeeder() envOption {
	return func(_ *RouterConfig, d *Deps) { d.Seeder = nil }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	testutil.SeedGames(t, db,
		testutil.Game(2607, "the-legend-of-zelda"),
		testutil.Game(1020, "grand-theft-auto-v"),
	)
	env := &testEnv{
		t:  t,
		db: db,
		users: identity.NewMemoryDirectory(
			identity.User{ID: "fakeId", Username: ptr.To("fake")},
			identity.User{ID: "otherId", Username: ptr.To("other")},
		),
		hub:    hub.New(),
		seeder: &stubRunner{},
	}

	deps := Deps{
		Games:    repository.NewGameRepository(db),
		Profiles: repository.NewProfileRepository(db),
		Ratings:  repository.NewRatingRepository(db),
		Reviews:  repository.NewReviewRepository(db),
		Statuses: repository.NewStatusRepository(db),
		Users:    env.users,
		Hub:      env.hub,
		Seeder:   env.seeder,
	}
	cfg := RouterConfig{
		JWTSecret:  testJWTSecret,
		CronSecret: testCronSecret,
		Limiter:    ratelimit.NewLocalLimiter(1000, time.Second),
	}
	for _, opt := range opts {
		opt(&cfg, &deps)
	}
	env.router = NewRouter(New(deps), cfg)
	return env
}

// token mints a session token for identity.
func (e *testEnv) token(identity string) string {
	e.t.Helper()
	tok, err := jwt.GenerateToken(testJWTSecret, identity, time.Hour)
	require.NoError(e.t, err)
	return tok
}

// do sends a request as identity; an empty identity sends no token.
func (e *testEnv) do(method, path, identity string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if identity != "" {
		req.Header.Set("Authorization", "Bearer "+e.token(identity))
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals the response body into a fresh T.
func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (e *testEnv) count(model any) int64 {
	e.t.Helper()
	var n int64
	require.NoError(e.t, e.db.Model(model).Count(&n).Error)
	return n
}

// obj is a JSON object request body.
type obj = map[string]any
