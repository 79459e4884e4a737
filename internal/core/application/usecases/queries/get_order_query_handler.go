package queries

import (
	"context"

	"delivery-api/internal/core/application/caching"
	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/ports"
)

// GetOrderQueryHandler reads one order with its items through the cache under
// caching.OrderKey.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(orderRepo, cache)
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	order, found, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if found {
//	    fmt.Printf("Order %s is %s, total %s\n", order.ID, order.Status, order.Total)
//	}
type GetOrderQueryHandler struct {
	repo  ports.OrderRepository
	cache *caching.ReadThrough
}

// NewGetOrderQueryHandler creates a handler backed by repo and cache.
func NewGetOrderQueryHandler(repo ports.OrderRepository, cache *caching.ReadThrough) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo, cache: cache}
}

// Handle returns found=false, and no error, when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (views.OrderView, bool, error) {
	if err := query.Validate(); err != nil {
		return views.OrderView{}, false, err
	}

	return caching.Load(ctx, h.cache, caching.OrderKey(query.ID()), func(ctx context.Context) (views.OrderView, bool, error) {
		o, err := h.repo.Get(ctx, query.ID())
		if err != nil {
			return views.OrderView{}, false, notFoundAsMiss(err)
		}
		return views.FromOrder(o), true, nil
	})
}
