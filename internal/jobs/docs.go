// Package jobs provides scheduled background tasks for the point of sale.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DispatchRetryJob - Runs every 15 seconds to assign drivers to delivery
// orders that checked out while no driver was free
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignPendingOrderHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch retry job ignores expected business outcomes (no unassigned
// orders, no free drivers) and logs everything else.
package jobs
