package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vglist/backend/internal/identity"
	"vglist/backend/internal/igdb"
	"vglist/backend/internal/ingest"
	"vglist/backend/internal/ratelimit"
	"vglist/backend/internal/repository"
	"vglist/backend/internal/search"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var outboundClient = &http.Client{Timeout: 30 * time.Second}

// newSeeder builds the catalog ingestion pipeline.
func (a *app) newSeeder(db *gorm.DB) *ingest.Seeder {
	cfg := a.cfg
	catalog := igdb.NewClient(igdb.Config{
		BaseURL:           cfg.IGDBBaseURL,
		TokenURL:          cfg.IGDBTokenURL,
		ClientID:          cfg.IGDBClientID,
		ClientSecret:      cfg.IGDBClientSecret,
		RequestsPerSecond: cfg.IGDBRequestsPerSecond,
	}, outboundClient)
	index := search.NewAlgoliaClient(search.AlgoliaConfig{
		AppID:   cfg.AlgoliaAppID,
		APIKey:  cfg.AlgoliaAPIKey,
		Index:   cfg.AlgoliaIndex,
		BaseURL: cfg.AlgoliaBaseURL,
	}, outboundClient)

	return ingest.NewSeeder(catalog, repository.NewGameRepository(db), index, ingest.Options{
		StartPage:             cfg.Seed.StartPage,
		EndPage:               cfg.Seed.EndPage,
		PageSize:              cfg.Seed.PageSize,
		ConflictPolicy:        repository.ConflictPolicy(cfg.Seed.ConflictPolicy),
		DefaultMissingRatings: cfg.Seed.DefaultMissingRatings,
	}, a.log.With(zap.String("component", "ingest")))
}

// newLimiter returns a Redis backed limiter when Redis is configured and an
// in-process one otherwise. The returned close func releases the client.
func (a *app) newLimiter(ctx context.Context) (ratelimit.Limiter, func() error, error) {
	cfg := a.cfg
	if cfg.RedisAddr == "" {
		a.log.Warn("REDIS_ADDR not set, rate limits are per process")
		return ratelimit.NewLocalLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	a.log.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr))
	return ratelimit.NewRedisLimiter(client, cfg.RateLimitRequests, cfg.RateLimitWindow), client.Close, nil
}

// newDirectory returns the Clerk directory, or an empty in-memory one for
// local development.
func (a *app) newDirectory() identity.Directory {
	if a.cfg.ClerkSecretKey == "" {
		a.log.Warn("CLERK_SECRET_KEY not set, using an empty user directory")
		return identity.NewMemoryDirectory()
	}
	return identity.NewClerkClient(a.cfg.ClerkBaseURL, a.cfg.ClerkSecretKey, outboundClient)
}
