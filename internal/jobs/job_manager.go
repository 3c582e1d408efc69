package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueOrdersJob *OverdueOrdersJob
	snapshotJob      *SnapshotJob
}

// NewJobManager creates a job manager. snapshotJob may be nil when no
// snapshot sink is configured.
func NewJobManager(overdueOrdersJob *OverdueOrdersJob, snapshotJob *SnapshotJob) *JobManager {
	return &JobManager{
		overdueOrdersJob: overdueOrdersJob,
		snapshotJob:      snapshotJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue orders job: %w", err)
	}

	if jm.snapshotJob == nil {
		return nil
	}
	if err := jm.snapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.overdueOrdersJob.Stop()
		return fmt.Errorf("failed to start snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully, waiting for running passes.
func (jm *JobManager) StopAll() {
	if jm.snapshotJob != nil {
		jm.snapshotJob.Stop()
	}
	jm.overdueOrdersJob.Stop()
}
