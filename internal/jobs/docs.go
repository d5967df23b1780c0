// Package jobs provides scheduled background tasks for the POS server.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules accept cron expressions with a seconds field as well as
// descriptors such as "@every 25s".
//
// # Available Jobs
//
// 1. KeepaliveJob - pings every socket client so that dead connections are dropped
// 2. OrderBoardSummaryJob - logs the number of orders per status and connected clients
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getOrdersHandler, hub, jobs.Schedules{
//		Keepalive: "@every 25s",
//		Summary:   "@every 1m",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - An invalid schedule fails StartAll and stops any already running jobs
// - Summary failures are logged and retried on the next tick
package jobs
