package queries

import (
	"context"

	"delivery-api/internal/core/application/caching"
	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/domain/model/order"
	"delivery-api/internal/core/ports"
)

// ListOrdersQueryHandler lists all orders or the orders in one status. Each
// status has its own cache entry under caching.OrdersKey.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(orderRepo, cache)
//	query, err := NewListOrdersByStatusQuery(order.Shipped)
//	if err != nil {
//	    return err
//	}
//
//	shipped, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("%d orders are on their way\n", len(shipped))
type ListOrdersQueryHandler struct {
	repo  ports.OrderRepository
	cache *caching.ReadThrough
}

// NewListOrdersQueryHandler creates a handler backed by repo and cache.
func NewListOrdersQueryHandler(repo ports.OrderRepository, cache *caching.ReadThrough) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{repo: repo, cache: cache}
}

// Handle returns the orders oldest first; an empty result is an empty slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]views.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result, _, err := caching.Load(ctx, h.cache, caching.OrdersKey(query.Status()),
		func(ctx context.Context) ([]views.OrderView, bool, error) {
			var (
				orders []*order.Order
				err    error
			)
			if query.Status() == order.Unknown {
				orders, err = h.repo.GetAll(ctx)
			} else {
				orders, err = h.repo.GetByStatus(ctx, query.Status())
			}
			if err != nil {
				return nil, false, err
			}
			return views.FromOrders(orders), true, nil
		})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []views.OrderView{}
	}
	return result, nil
}
