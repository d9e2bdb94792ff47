package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"restaurant/internal/notifications"
)

// NotificationPurgeJob manages the scheduled cleanup of expired notifications.
// Runs on a configurable cron schedule to drop events past their retention
// window from the in-memory bus.
type NotificationPurgeJob struct {
	bus      *notifications.Bus
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationPurgeJob creates a new job for purging expired notifications.
// The schedule uses six-field cron syntax, e.g. "0 * * * * *" for every minute.
func NewNotificationPurgeJob(bus *notifications.Bus, schedule string, logger *slog.Logger) *NotificationPurgeJob {
	return &NotificationPurgeJob{
		bus:      bus,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_purge_job"),
	}
}

// Start begins the notification purge job on its schedule.
func (j *NotificationPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if dropped := j.bus.PurgeExpired(); dropped > 0 {
			j.logger.InfoContext(ctx, "Purged expired notifications", "dropped", dropped)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification purge job started", "schedule", j.schedule)
	return nil
}

// Stop stops the notification purge job.
func (j *NotificationPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification purge job stopped")
}
