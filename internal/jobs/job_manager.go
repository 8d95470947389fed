package jobs

import (
	"fmt"
	"log/slog"

	"orderflow/internal/core/ports"
)

// Schedules holds the cron expression of each job. Empty disables the job.
type Schedules struct {
	LowStock      string
	DelayedOrders string
}

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs    []job
	names   []string
	started []job
}

func NewJobManager(
	lowStockHandler lowStockQueryHandler,
	delayedOrdersHandler delayedOrdersQueryHandler,
	clock ports.Clock,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if schedules.LowStock != "" {
		jm.add("low stock report", NewLowStockReportJob(lowStockHandler, schedules.LowStock, logger))
	}
	if schedules.DelayedOrders != "" {
		jm.add("delayed orders report",
			NewDelayedOrdersReportJob(delayedOrdersHandler, clock, schedules.DelayedOrders, logger))
	}
	return jm
}

func (jm *JobManager) add(name string, j job) {
	jm.names = append(jm.names, name)
	jm.jobs = append(jm.jobs, j)
}

// StartAll starts all scheduled jobs. When one fails the jobs already
// started are stopped again.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", jm.names[i], err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops all started jobs and waits for running reports to finish.
func (jm *JobManager) StopAll() {
	for _, j := range jm.started {
		j.Stop()
	}
	jm.started = nil
}
