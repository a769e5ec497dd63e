package jobs

import (
	"roomreserve-backend/internal/config"
	"roomreserve-backend/internal/ledger"
	"roomreserve-backend/internal/logger"
	"roomreserve-backend/internal/repository"
	"roomreserve-backend/internal/service"
)

// JobRunner coordinates all scheduled maintenance jobs
type JobRunner struct {
	ledger   *ledger.Ledger
	userRepo repository.UserRepository
	emailSvc service.EmailService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(ldg *ledger.Ledger, userRepo repository.UserRepository, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		ledger:   ldg,
		userRepo: userRepo,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

// Config returns the loaded configuration for schedule lookups
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
