// Package jobs provides scheduled background tasks for the work order service.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision and are
// managed through JobManager:
//
//	snapshot := jobs.NewStatusSnapshotJob(countHandler, workOrderMetrics, cfg.StatusSnapshotSchedule, logger)
//	jobManager := jobs.NewJobManager(logger, snapshot)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StatusSnapshotJob counts work orders per status and refreshes the
// deliverytracker_workorders gauge. A failed snapshot is logged and the gauge
// keeps its previous values until the next tick.
package jobs
