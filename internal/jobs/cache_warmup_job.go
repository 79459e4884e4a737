package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-api/internal/core/application/usecases/queries"
	"delivery-api/internal/core/application/views"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const warmupTimeout = 30 * time.Second

type (
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]views.OrderView, error)
	}
	ListCustomersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomersQuery) ([]views.CustomerView, error)
	}
	ListProductsHandler interface {
		Handle(ctx context.Context, query queries.ListProductsQuery) ([]views.ProductView, error)
	}
)

// CacheWarmupJob refreshes the cached order, customer and product listings on a cron schedule.
// The list query handlers are read-through, so running them repopulates expired entries.
type CacheWarmupJob struct {
	orders    ListOrdersHandler
	customers ListCustomersHandler
	products  ListProductsHandler
	schedule  string
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewCacheWarmupJob accepts six-field cron expressions (seconds first) and descriptors such as "@every 5m".
func NewCacheWarmupJob(
	orders ListOrdersHandler,
	customers ListCustomersHandler,
	products ListProductsHandler,
	schedule string,
	logger *zap.Logger,
) *CacheWarmupJob {
	return &CacheWarmupJob{
		orders:    orders,
		customers: customers,
		products:  products,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With(zap.String("component", "cache_warmup_job")),
	}
}

func (j *CacheWarmupJob) Name() string {
	return "cache warm-up"
}

// Start schedules the job; an empty schedule leaves it disabled.
func (j *CacheWarmupJob) Start() error {
	if j.schedule == "" {
		j.logger.Info("cache warm-up job disabled")
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
		defer cancel()

		if err := j.Run(ctx); err != nil {
			j.logger.Error("cache warm-up job failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("cache warm-up job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop unschedules the job and waits for a running warm-up to finish.
func (j *CacheWarmupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("cache warm-up job stopped")
}

// Run loads every listing once. All listings are attempted even if one fails.
func (j *CacheWarmupJob) Run(ctx context.Context) error {
	started := time.Now()

	orders, ordersErr := j.orders.Handle(ctx, queries.NewListOrdersQuery())
	if ordersErr != nil {
		ordersErr = fmt.Errorf("warm orders: %w", ordersErr)
	}

	customers, customersErr := j.customers.Handle(ctx, queries.NewListCustomersQuery())
	if customersErr != nil {
		customersErr = fmt.Errorf("warm customers: %w", customersErr)
	}

	products, productsErr := j.products.Handle(ctx, queries.NewListProductsQuery(""))
	if productsErr != nil {
		productsErr = fmt.Errorf("warm products: %w", productsErr)
	}

	if err := errors.Join(ordersErr, customersErr, productsErr); err != nil {
		return err
	}

	j.logger.Debug("cache warmed",
		zap.Int("orders", len(orders)),
		zap.Int("customers", len(customers)),
		zap.Int("products", len(products)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}
