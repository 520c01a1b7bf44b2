package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vglist/backend/internal/database"
	"vglist/backend/internal/handler"
	"vglist/backend/internal/hub"
	"vglist/backend/internal/ingest"
	"vglist/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the ingestion schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.HTTPAddr = addr
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func (a *app) serve(parent context.Context) error {
	cfg, log := a.cfg, a.log
	if err := cfg.ValidateServer(); err != nil {
		return err
	}
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	limiter, closeLimiter, err := a.newLimiter(ctx)
	if err != nil {
		return err
	}
	defer closeLimiter()

	deps := handler.Deps{
		Games:    repository.NewGameRepository(db),
		Profiles: repository.NewProfileRepository(db),
		Ratings:  repository.NewRatingRepository(db),
		Reviews:  repository.NewReviewRepository(db),
		Statuses: repository.NewStatusRepository(db),
		Users:    a.newDirectory(),
		Hub:      hub.New(),
		Log:      log,
	}

	var scheduler *ingest.Scheduler
	if err := cfg.ValidateSeed(); err != nil {
		log.Warn("Catalog ingestion disabled", zap.Error(err))
	} else {
		seeder := a.newSeeder(db)
		deps.Seeder = seeder
		if cfg.Seed.Schedule != "" {
			if scheduler, err = ingest.NewScheduler(cfg.Seed.Schedule, seeder, log); err != nil {
				return err
			}
		}
	}

	router := handler.NewRouter(handler.New(deps), handler.RouterConfig{
		JWTSecret:  cfg.JWTSecret,
		CronSecret: cfg.CronSecret,
		Limiter:    limiter,
		Log:        log,
	})
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server is running", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if scheduler != nil {
		g.Go(func() error { return scheduler.Run(gctx) })
	}
	return g.Wait()
}
