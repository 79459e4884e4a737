package commands

import (
	"context"

	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels any order that has not been delivered.
// Canceling an already canceled order succeeds and leaves it unchanged.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      CacheInvalidator
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, cache CacheInvalidator) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle returns found=false, and no error, when the order does not exist.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (views.OrderView, bool, error) {
	if err := cmd.Validate(); err != nil {
		return views.OrderView{}, false, err
	}

	return changeOrder(ctx, h.uowFactory, h.cache, cmd.OrderID(), func(o *order.Order) error {
		return o.Cancel()
	})
}
