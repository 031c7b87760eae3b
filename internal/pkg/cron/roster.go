package cron

import (
	"context"
	"time"

	"github.com/wmoldes/roster-backend/internal/domain/realtime"
)

// RosterJobs contains roster-related cron jobs
type RosterJobs struct {
	broadcaster realtime.Broadcaster
	interval    time.Duration
}

// NewRosterJobs creates roster cron jobs
func NewRosterJobs(broadcaster realtime.Broadcaster, interval time.Duration) *RosterJobs {
	return &RosterJobs{
		broadcaster: broadcaster,
		interval:    interval,
	}
}

// RegisterJobs registers all roster-related cron jobs
func (j *RosterJobs) RegisterJobs(scheduler *Scheduler) {
	// Vacation statuses roll over with the calendar even when no row changes.
	scheduler.AddJob(
		"refresh_roster_snapshot",
		j.interval,
		j.RefreshSnapshot,
	)
}

// RefreshSnapshot republishes the roster snapshot to every subscriber
func (j *RosterJobs) RefreshSnapshot(ctx context.Context) error {
	return j.broadcaster.Publish(ctx)
}
