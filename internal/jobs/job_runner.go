package jobs

import (
	"staynest-admin-backend/internal/config"
	"staynest-admin-backend/internal/logger"
	"staynest-admin-backend/internal/repository"
	"staynest-admin-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	settingsRepo repository.SettingsRepository
	payoutRepo   repository.PayoutRepository
	services     *Services
	config       *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Ledger service.LedgerService
	Email  service.EmailService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	settingsRepo repository.SettingsRepository,
	payoutRepo repository.PayoutRepository,
	services *Services,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		settingsRepo: settingsRepo,
		payoutRepo:   payoutRepo,
		services:     services,
		config:       cfg,
	}
}

// Config returns the runner's configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.SnapshotBalance()
	jr.SendPayoutSummary()
}
