package commands

import (
	"context"
	"errors"
	"fmt"

	"delivery-api/internal/core/application/caching"
	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/domain/model/order"
	"delivery-api/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a status change under a row lock.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      CacheInvalidator
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	cache CacheInvalidator,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle returns found=false, and no error, when the order does not exist.
// Rejected transitions surface as errs.ErrStateIsInvalid or errs.ErrValueIsInvalid.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (views.OrderView, bool, error) {
	if err := cmd.Validate(); err != nil {
		return views.OrderView{}, false, err
	}

	return changeOrder(ctx, h.uowFactory, h.cache, cmd.OrderID(), func(o *order.Order) error {
		return o.AdvanceTo(cmd.Status())
	})
}

// changeOrder loads the order with GetForUpdate, applies mutate, persists and commits.
func changeOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	cache CacheInvalidator,
	orderID string,
	mutate func(o *order.Order) error,
) (views.OrderView, bool, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.OrderView{}, false, fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return views.OrderView{}, false, nil
	}
	if err != nil {
		return views.OrderView{}, false, fmt.Errorf("load order: %w", err)
	}

	if err = mutate(o); err != nil {
		return views.OrderView{}, false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return views.OrderView{}, false, fmt.Errorf("update order: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return views.OrderView{}, false, fmt.Errorf("commit: %w", err)
	}

	cache.Invalidate(ctx, caching.OrderKeys(o.ID())...)

	return views.FromOrder(o), true, nil
}
