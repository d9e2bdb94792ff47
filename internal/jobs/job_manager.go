package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/notifications"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationPurgeJob *NotificationPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(bus *notifications.Bus, purgeSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		notificationPurgeJob: NewNotificationPurgeJob(bus, purgeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationPurgeJob.Stop()
}
