package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"vglist/backend/internal/igdb"
	"vglist/backend/internal/logger"
	"vglist/backend/internal/models"
	"vglist/backend/internal/repository"
	"vglist/backend/internal/search"
	"vglist/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"k8s.io/utils/ptr"
)

type fakeCatalog struct {
	mu       sync.Mutex
	pages    map[int][]igdb.Record
	failAt   int
	authErr  error
	requests []int
}

func (f *fakeCatalog) Authenticate(context.Context) error { return f.authErr }

func (f *fakeCatalog) Games(_ context.Context, page, _ int) ([]igdb.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, page)
	if f.failAt >= 0 && page == f.failAt {
		return nil, fmt.Errorf("fetch games page %d: unexpected status 500", page)
	}
	return f.pages[page], nil
}

func record(id int64) igdb.Record {
	return igdb.Record{
		ID:        id,
		UpdatedAt: 1700000000,
		Name:      fmt.Sprintf("game %d", id),
		Slug:      fmt.Sprintf("game-%d", id),
		Cover:     &igdb.Cover{URL: ptr.To(fmt.Sprintf("//images.igdb.com/t_thumb/%d.jpg", id))},
	}
}

type failingIndex struct{}

func (failingIndex) SaveGames(context.Context, []models.Game) error {
	return errors.New("index unavailable")
}

func TestSeederRun(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	catalog := &fakeCatalog{failAt: -1, pages: map[int][]igdb.Record{
		0: {record(1), record(2)},
		2: {record(3)},
	}}
	index := search.NewMemoryIndex()
	core, logs := observer.New(zapcore.DebugLevel)

	s := NewSeeder(catalog, repository.NewGameRepository(db), index, Options{
		StartPage: 0, EndPage: 3, PageSize: 2,
		ConflictPolicy: repository.ConflictSkip, DefaultMissingRatings: true,
	}, logger.NewFromZap(zap.New(core)))

	res, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, int64(3), res.Games)
	assert.Equal(t, []int{0, 1, 2}, catalog.requests)

	var count int64
	require.NoError(t, db.Model(&models.Game{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	game := testutil.FindGame(t, db, 3)
	assert.Equal(t, "https://images.igdb.com/t_cover_big/3.jpg", *game.Cover)
	assert.Equal(t, 0.0, *game.IgdbRating)

	assert.Equal(t, 3, index.Len())
	_, ok := index.Get("2")
	assert.True(t, ok)

	assert.Equal(t, 1, logs.FilterMessage("Empty catalog page").Len())
}

func TestSeederRerunSkipsKnownGames(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	catalog := &fakeCatalog{failAt: -1, pages: map[int][]igdb.Record{0: {record(1), record(2)}}}
	s := NewSeeder(catalog, repository.NewGameRepository(db), search.NewMemoryIndex(), Options{
		EndPage: 1, PageSize: 2, ConflictPolicy: repository.ConflictSkip,
	}, logger.Nop())

	_, err := s.Run(ctx)
	require.NoError(t, err)
	res, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Games)
}

func TestSeederAbortsOnFirstError(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch", func(t *testing.T) {
		db := testutil.NewDB(t)
		catalog := &fakeCatalog{failAt: 1, pages: map[int][]igdb.Record{0: {record(1)}, 2: {record(5)}}}
		s := NewSeeder(catalog, repository.NewGameRepository(db), search.NewMemoryIndex(), Options{
			EndPage: 3, PageSize: 1, ConflictPolicy: repository.ConflictSkip,
		}, logger.Nop())

		res, err := s.Run(ctx)
		assert.ErrorContains(t, err, "page 1")
		assert.Equal(t, 1, res.Pages)
		assert.Equal(t, []int{0, 1}, catalog.requests)

		var count int64
		require.NoError(t, db.Model(&models.Game{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "earlier pages stay written")
	})

	t.Run("authenticate", func(t *testing.T) {
		catalog := &fakeCatalog{failAt: -1, authErr: errors.New("bad credentials")}
		s := NewSeeder(catalog, repository.NewGameRepository(testutil.NewDB(t)), search.NewMemoryIndex(), Options{
			EndPage: 3, PageSize: 1,
		}, logger.Nop())

		_, err := s.Run(ctx)
		assert.ErrorContains(t, err, "bad credentials")
		assert.Empty(t, catalog.requests)
	})

	t.Run("duplicate with error policy", func(t *testing.T) {
		db := testutil.NewDB(t)
		catalog := &fakeCatalog{failAt: -1, pages: map[int][]igdb.Record{0: {record(1)}, 1: {record(1)}}}
		s := NewSeeder(catalog, repository.NewGameRepository(db), search.NewMemoryIndex(), Options{
			EndPage: 2, PageSize: 1, ConflictPolicy: repository.ConflictError,
		}, logger.Nop())

		_, err := s.Run(ctx)
		assert.ErrorContains(t, err, "insert page 1")
	})

	t.Run("index", func(t *testing.T) {
		db := testutil.NewDB(t)
		catalog := &fakeCatalog{failAt: -1, pages: map[int][]igdb.Record{0: {record(1)}}}
		s := NewSeeder(catalog, repository.NewGameRepository(db), failingIndex{}, Options{
			EndPage: 2, PageSize: 1, ConflictPolicy: repository.ConflictSkip,
		}, logger.Nop())

		_, err := s.Run(ctx)
		assert.ErrorContains(t, err, "index page 0")
		assert.Equal(t, []int{0}, catalog.requests)

		var count int64
		require.NoError(t, db.Model(&models.Game{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "database write is not compensated")
	})
}

func TestSeederStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	catalog := &fakeCatalog{failAt: -1}
	s := NewSeeder(catalog, repository.NewGameRepository(testutil.NewDB(t)), search.NewMemoryIndex(), Options{
		EndPage: 3, PageSize: 1,
	}, logger.Nop())

	_, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type countingRunner struct {
	runs chan struct{}
}

func (r countingRunner) Run(context.Context) (Result, error) {
	r.runs <- struct{}{}
	return Result{}, nil
}

func TestScheduler(t *testing.T) {
	_, err := NewScheduler("not a schedule", countingRunner{}, logger.Nop())
	assert.Error(t, err)

	runner := countingRunner{runs: make(chan struct{}, 4)}
	s, err := NewScheduler("@every 1s", runner, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-runner.runs:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled run did not fire")
	}
	cancel()
	require.NoError(t, <-done)
}
