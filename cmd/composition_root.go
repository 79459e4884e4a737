package cmd

import (
	"context"
	"fmt"

	httpin "delivery-api/internal/adapters/in/http"
	"delivery-api/internal/adapters/out/postgres"
	"delivery-api/internal/adapters/out/redis"
	"delivery-api/internal/core/application/caching"
	"delivery-api/internal/core/application/usecases/commands"
	"delivery-api/internal/core/application/usecases/queries"
	"delivery-api/internal/core/ports"
	"delivery-api/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	logger     *zap.Logger
	registry   *prometheus.Registry
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      *caching.ReadThrough
}

// NewCompositionRoot wires the use cases on top of gormDB and store. Cache lookups are
// counted on registry, which also backs the /metrics endpoint.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	store ports.Cache,
	logger *zap.Logger,
	registry *prometheus.Registry,
) (*CompositionRoot, error) {
	instrumented, err := redis.NewInstrumentedCache(store, registry)
	if err != nil {
		return nil, fmt.Errorf("register cache metrics: %w", err)
	}

	return &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		registry:   registry,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		cache:      caching.NewReadThrough(instrumented, cfg.CacheTTL, logger),
	}, nil
}

// NewCache connects the store selected by CACHE_DRIVER. The returned close func releases it.
func NewCache(ctx context.Context, cfg Config, logger *zap.Logger) (ports.Cache, func() error, error) {
	if cfg.CacheDriver == CacheDriverNoop {
		logger.Info("caching disabled")
		return redis.NoopStore{}, func() error { return nil }, nil
	}

	store, err := redis.NewStore(ctx, cfg.Redis(), logger)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() *commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateCustomerCommandHandler(f, c.cache)
	return &h
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() *commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateProductCommandHandler(f, c.cache)
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.cache)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	h := commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.cache)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.cache)
	return &h
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.uowFactory.Create().CustomerRepository(), c.cache)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.uowFactory.Create().CustomerRepository(), c.cache)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewListCustomerOrdersQueryHandler(uow.OrderRepository(), uow.CustomerRepository())
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.uowFactory.Create().ProductRepository(), c.cache)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.uowFactory.Create().ProductRepository(), c.cache)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository(), c.cache)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory.Create().OrderRepository(), c.cache)
}

// CreateRouter builds the HTTP router serving every use case.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateCustomer:     c.CreateCreateCustomerCommandHandler(),
		CreateProduct:      c.CreateCreateProductCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:  c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		GetCustomer:        c.CreateGetCustomerQueryHandler(),
		ListCustomers:      c.CreateListCustomersQueryHandler(),
		ListCustomerOrders: c.CreateListCustomerOrdersQueryHandler(),
		GetProduct:         c.CreateGetProductQueryHandler(),
		ListProducts:       c.CreateListProductsQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
	})

	return httpin.NewRouter(server, httpin.RouterConfig{
		Logger:   c.logger,
		Registry: c.registry,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewCacheWarmupJob(
			c.CreateListOrdersQueryHandler(),
			c.CreateListCustomersQueryHandler(),
			c.CreateListProductsQueryHandler(),
			c.cfg.CacheWarmupSchedule,
			c.logger,
		),
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
