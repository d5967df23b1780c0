package jobs

import (
	"fmt"
	"log/slog"

	"pos/internal/core/application/usecases/queries"
)

// Schedules holds the cron expressions of the jobs.
type Schedules struct {
	Keepalive string
	Summary   string
}

// SocketHub is the part of the socket hub the jobs use.
type SocketHub interface {
	Pinger
	ClientCounter
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	keepaliveJob *KeepaliveJob
	summaryJob   *OrderBoardSummaryJob
}

// NewJobManager creates a new job manager with all required jobs.
// hub may be nil when the socket channel is disabled; the keepalive job is
// then not created.
func NewJobManager(
	getOrdersHandler queries.GetOrdersQueryHandler,
	hub SocketHub,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}

	var clients ClientCounter
	if hub != nil {
		clients = hub
		jm.keepaliveJob = NewKeepaliveJob(hub, schedules.Keepalive, logger)
	}
	jm.summaryJob = NewOrderBoardSummaryJob(getOrdersHandler, clients, schedules.Summary, logger)

	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.summaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start order board summary job: %w", err)
	}

	if jm.keepaliveJob != nil {
		if err := jm.keepaliveJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.summaryJob.Stop()
			return fmt.Errorf("failed to start keepalive job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.keepaliveJob != nil {
		jm.keepaliveJob.Stop()
	}
	jm.summaryJob.Stop()
}
