// Package ingest copies the IGDB catalog into the database and the search
// index.
package ingest

import (
	"context"
	"fmt"
	"time"

	"vglist/backend/internal/igdb"
	"vglist/backend/internal/logger"
	"vglist/backend/internal/metrics"
	"vglist/backend/internal/models"
	"vglist/backend/internal/repository"
	"vglist/backend/internal/search"

	"go.uber.org/zap"
)

// Catalog is the upstream game source.
type Catalog interface {
	Authenticate(ctx context.Context) error
	Games(ctx context.Context, page, pageSize int) ([]igdb.Record, error)
}

// GameStore persists mapped pages.
type GameStore interface {
	InsertBatch(ctx context.Context, games []models.Game, policy repository.ConflictPolicy) (int64, error)
}

// Options bound one run.
type Options struct {
	StartPage             int
	EndPage               int
	PageSize              int
	ConflictPolicy        repository.ConflictPolicy
	DefaultMissingRatings bool
}

// Result summarizes a completed run.
type Result struct {
	Pages    int           `json:"pages"`
	Games    int64         `json:"games"`
	Duration time.Duration `json:"duration"`
}

// Seeder runs catalog ingestion. Runs are sequential and stop at the first
// error; nothing written before the error is rolled back.
type Seeder struct {
	catalog Catalog
	store   GameStore
	index   search.Indexer
	opts    Options
	log     *logger.Logger
}

func NewSeeder(catalog Catalog, store GameStore, index search.Indexer, opts Options, log *logger.Logger) *Seeder {
	return &Seeder{catalog: catalog, store: store, index: index, opts: opts, log: log}
}

// Options returns the configured bounds.
func (s *Seeder) Options() Options {
	return s.opts
}

// Run ingests pages [StartPage, EndPage) with the configured options.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	return s.RunPages(ctx, s.opts.StartPage, s.opts.EndPage)
}

// RunPages ingests pages [start, end).
func (s *Seeder) RunPages(ctx context.Context, start, end int) (res Result, err error) {
	began := time.Now()
	log := s.log.With(zap.Int("start_page", start), zap.Int("end_page", end))
	log.Info("Starting catalog ingestion")

	defer func() {
		res.Duration = time.Since(began)
		if err != nil {
			metrics.IngestErrorsTotal.Inc()
			log.Error("Catalog ingestion aborted", err,
				zap.Int("pages", res.Pages), zap.Int64("games", res.Games))
			return
		}
		metrics.IngestRunDuration.Observe(res.Duration.Seconds())
		log.Info("Catalog ingestion finished",
			zap.Int("pages", res.Pages), zap.Int64("games", res.Games), zap.Duration("duration", res.Duration))
	}()

	if err = s.catalog.Authenticate(ctx); err != nil {
		return res, fmt.Errorf("authenticate: %w", err)
	}

	mapOpts := igdb.MapOptions{DefaultMissingRatings: s.opts.DefaultMissingRatings}
	for page := start; page < end; page++ {
		if err = ctx.Err(); err != nil {
			return res, err
		}

		records, fetchErr := s.catalog.Games(ctx, page, s.opts.PageSize)
		if fetchErr != nil {
			return res, fetchErr
		}
		res.Pages++
		metrics.IngestPagesTotal.Inc()

		if len(records) == 0 {
			log.Warn("Empty catalog page", zap.Int("page", page))
			continue
		}

		games := igdb.MapGames(records, mapOpts)
		written, insertErr := s.store.InsertBatch(ctx, games, s.opts.ConflictPolicy)
		if insertErr != nil {
			return res, fmt.Errorf("insert page %d: %w", page, insertErr)
		}
		res.Games += written
		metrics.IngestGamesTotal.Add(float64(written))

		if err = s.index.SaveGames(ctx, games); err != nil {
			return res, fmt.Errorf("index page %d: %w", page, err)
		}

		log.Debug("Ingested catalog page",
			zap.Int("page", page), zap.Int("records", len(records)), zap.Int64("written", written))
	}
	return res, nil
}
