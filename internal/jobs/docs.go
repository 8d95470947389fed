// Package jobs runs the periodic inventory and delivery reports.
//
// Jobs are scheduled with github.com/robfig/cron/v3 and only read: each run
// executes a query and logs what it found.
//
// # Available Jobs
//
// 1. LowStockReportJob - lists accessories whose stock is below their minimum
// 2. DelayedOrdersReportJob - lists orders past their expected delivery date
//
// # Usage
//
//	jobManager := jobs.NewJobManager(lowStockHandler, delayedHandler, clock, jobs.Schedules{
//		LowStock:      "0 */15 * * * *",
//		DelayedOrders: "0 0 7 * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with a leading seconds field.
// An empty schedule disables the job.
package jobs
