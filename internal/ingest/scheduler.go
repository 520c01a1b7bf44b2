package ingest

import (
	"context"

	"vglist/backend/internal/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Runner is anything that performs one ingestion run.
type Runner interface {
	Run(ctx context.Context) (Result, error)
}

// Scheduler triggers ingestion on a cron schedule. A tick that fires while
// the previous run is still going is skipped.
type Scheduler struct {
	spec     string
	schedule cron.Schedule
	runner   Runner
	log      *logger.Logger
}

// NewScheduler parses spec, a five field cron expression or a descriptor
// such as "@daily".
func NewScheduler(spec string, runner Runner, log *logger.Logger) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, err
	}
	return &Scheduler{spec: spec, schedule: schedule, runner: runner, log: log}, nil
}

// Run starts the schedule and blocks until ctx is done. Runs receive ctx, so
// cancelling it also aborts a run in flight.
func (s *Scheduler) Run(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(s.schedule, cron.FuncJob(func() {
		// Errors are logged by the runner.
		_, _ = s.runner.Run(ctx)
	}))

	s.log.Info("Catalog ingestion scheduled", zap.String("schedule", s.spec))
	c.Start()
	<-ctx.Done()
	s.log.Info("Stopping ingestion scheduler")
	<-c.Stop().Done()
	return nil
}
