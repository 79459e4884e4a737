package commands

import (
	"context"
	"fmt"

	"delivery-api/internal/core/application/caching"
	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/domain/model/kernel"
	"delivery-api/internal/core/domain/model/order"
	"delivery-api/internal/pkg/errs"
)

// CreateOrderCommandHandler places a new order.
//
// The customer is checked first; a missing customer fails with errs.ErrObjectNotFound
// before any product is looked up. Each product is then loaded and its current price
// copied into the order line.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      CacheInvalidator
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, cache CacheInvalidator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle persists the order in Created status and returns its projection.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (views.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return views.OrderView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.OrderView{}, fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.CustomerRepository().Exists(ctx, cmd.CustomerID())
	if err != nil {
		return views.OrderView{}, fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return views.OrderView{}, errs.NewObjectNotFoundError("customer", cmd.CustomerID())
	}

	productRepo := uow.ProductRepository()
	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		p, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return views.OrderView{}, err
		}

		item, err := order.NewItem(p.ID(), line.Quantity, p.Price().Decimal())
		if err != nil {
			return views.OrderView{}, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID().String(), cmd.CustomerID(), items)
	if err != nil {
		return views.OrderView{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return views.OrderView{}, fmt.Errorf("add order: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return views.OrderView{}, fmt.Errorf("commit: %w", err)
	}

	h.cache.Invalidate(ctx, caching.OrderKeys(o.ID())...)

	return views.FromOrder(o), nil
}
