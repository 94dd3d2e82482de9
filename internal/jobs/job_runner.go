package jobs

import (
	"rosterhub-backend/internal/config"
	"rosterhub-backend/internal/identity"
	"rosterhub-backend/internal/logger"
	"rosterhub-backend/internal/repository"
	"rosterhub-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	ids     identity.Client
	members repository.MemberRepository
	email   service.EmailService
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(ids identity.Client, members repository.MemberRepository, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		ids:     ids,
		members: members,
		email:   email,
		config:  cfg,
	}
}

// Config exposes the runner configuration to the scheduler
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
