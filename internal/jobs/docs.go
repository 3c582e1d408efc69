// Package jobs provides scheduled background tasks for the ledger service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules are six-field expressions, seconds first.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - logs a warning for every unfinished order past its delivery date
// 2. SnapshotJob - copies the whole world state to an S3 bucket as one JSON document
//
// # Usage
//
//	overdue := jobs.NewOverdueOrdersJob(handlers.GetOverdueOrders, "0 0 * * * *", logger)
//	snapshot := jobs.NewSnapshotJob(store, sink, kernel.SystemClock{}, "0 0 3 * * *", logger)
//
//	jobManager := jobs.NewJobManager(overdue, snapshot)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and the schedule keeps running. A failed start
// stops any already running jobs.
package jobs
