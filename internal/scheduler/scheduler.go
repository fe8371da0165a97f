// Package scheduler runs the recurring rate ingestion job.
package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Job is a runnable task returning a human-readable status.
type Job interface {
	Run(ctx context.Context) (string, error)
}

// Scheduler owns the cron runner for background jobs.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates an empty Scheduler.
func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

// ScheduleIngestion registers the ingestion job at the given cron spec
// (e.g. "@every 60m"). Failures are logged; the next tick retries from scratch.
func (s *Scheduler) ScheduleIngestion(spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		status, err := job.Run(context.Background())
		if err != nil {
			s.logger.Error("Rate ingestion failed", slog.String("error", err.Error()))
			return
		}
		s.logger.Info("Rate ingestion finished", slog.String("status", status))
	})
	return err
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the cron runner, waiting for a running job to complete.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
