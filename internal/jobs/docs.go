// Package jobs provides scheduled background tasks for the delivery API.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through JobManager:
//
//	warmup := jobs.NewCacheWarmupJob(listOrders, listCustomers, listProducts, "0 */5 * * * *", logger)
//	manager := jobs.NewJobManager(warmup)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Available Jobs
//
// CacheWarmupJob runs the order, customer and product list queries so that their read-through
// cache entries are repopulated before clients ask for them. Overlapping runs are skipped.
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. A job that fails to start stops the
// jobs started before it.
package jobs
