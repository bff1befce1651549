package jobs

import (
	"opeec-backend/internal/config"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/repository/postgres"
	"opeec-backend/internal/service"
)

// defaultBatchSize is how many equipment rows a maintenance job reads per page.
const defaultBatchSize = 500

// JobRunner coordinates all scheduled and one-off maintenance jobs
type JobRunner struct {
	store     *postgres.Store
	services  *Services
	config    *config.Config
	batchSize int
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Catalog service.CatalogService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:     store,
		services:  services,
		config:    cfg,
		batchSize: defaultBatchSize,
	}
}

// Config returns the configuration the runner was built with
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
	jr.RepairLocationCoordinates()
}
