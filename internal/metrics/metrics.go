package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Rate limiter
	RateLimitRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vglist_rate_limit_rejections_total",
		Help: "The total number of mutating requests rejected by the rate limiter",
	})

	// Catalog ingestion
	IngestPagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vglist_ingest_pages_total",
		Help: "The total number of catalog pages fetched",
	})
	IngestGamesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vglist_ingest_games_total",
		Help: "The total number of catalog games written to the database",
	})
	IngestErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vglist_ingest_errors_total",
		Help: "The total number of ingestion runs aborted by an error",
	})
	IngestRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vglist_ingest_run_duration_seconds",
		Help:    "Duration of complete ingestion runs",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)
