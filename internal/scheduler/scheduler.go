package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"staynest-admin-backend/internal/jobs"
	"staynest-admin-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	// Nightly balance snapshot
	_, err := s.cron.AddFunc(cfg.SnapshotBalance, s.jobs.SnapshotBalance)
	if err != nil {
		logger.Error("Failed to register SnapshotBalance job", "error", err)
	}

	// Periodic drift check against the stored snapshot
	_, err = s.cron.AddFunc(cfg.CheckBalanceDrift, s.jobs.CheckBalanceDrift)
	if err != nil {
		logger.Error("Failed to register CheckBalanceDrift job", "error", err)
	}

	// Daily payout digest
	_, err = s.cron.AddFunc(cfg.SendPayoutSummary, s.jobs.SendPayoutSummary)
	if err != nil {
		logger.Error("Failed to register SendPayoutSummary job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
