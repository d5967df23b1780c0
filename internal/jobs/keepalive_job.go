package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Pinger sends a keepalive to every connected socket client.
type Pinger interface {
	Ping()
}

// KeepaliveJob pings socket clients so that dead connections are detected
// and dropped.
type KeepaliveJob struct {
	pinger   Pinger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewKeepaliveJob creates a keepalive job running on schedule, a cron
// expression with seconds or a descriptor such as "@every 25s".
func NewKeepaliveJob(pinger Pinger, schedule string, logger *slog.Logger) *KeepaliveJob {
	return &KeepaliveJob{
		pinger:   pinger,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "keepalive_job"),
	}
}

// Start registers the ping and starts the scheduler.
func (j *KeepaliveJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.pinger.Ping)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Keepalive job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running ping to finish.
func (j *KeepaliveJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Keepalive job stopped")
}
