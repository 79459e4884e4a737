package queries

import (
	"context"

	"delivery-api/internal/core/application/caching"
	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/ports"
)

// GetCustomerQueryHandler reads one customer through the cache under
// caching.CustomerKey. Misses are not cached.
//
// Example:
//
//	handler := NewGetCustomerQueryHandler(customerRepo, cache)
//	query, err := NewGetCustomerQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	customer, found, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !found {
//	    return errs.NewObjectNotFoundError("customer", customerID)
//	}
type GetCustomerQueryHandler struct {
	repo  ports.CustomerRepository
	cache *caching.ReadThrough
}

// NewGetCustomerQueryHandler creates a handler backed by repo and cache.
func NewGetCustomerQueryHandler(repo ports.CustomerRepository, cache *caching.ReadThrough) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{repo: repo, cache: cache}
}

// Handle returns found=false, and no error, when the customer does not exist.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (views.CustomerView, bool, error) {
	if err := query.Validate(); err != nil {
		return views.CustomerView{}, false, err
	}

	return caching.Load(ctx, h.cache, caching.CustomerKey(query.ID()),
		func(ctx context.Context) (views.CustomerView, bool, error) {
			c, err := h.repo.Get(ctx, query.ID())
			if err != nil {
				return views.CustomerView{}, false, notFoundAsMiss(err)
			}
			return views.FromCustomer(c), true, nil
		})
}

// ListCustomersQueryHandler returns every customer, cached as one entry under
// caching.CustomersKey.
//
// Example:
//
//	handler := NewListCustomersQueryHandler(customerRepo, cache)
//
//	customers, err := handler.Handle(ctx, NewListCustomersQuery())
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("Found %d customers\n", len(customers))
type ListCustomersQueryHandler struct {
	repo  ports.CustomerRepository
	cache *caching.ReadThrough
}

// NewListCustomersQueryHandler creates a handler backed by repo and cache.
func NewListCustomersQueryHandler(repo ports.CustomerRepository, cache *caching.ReadThrough) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{repo: repo, cache: cache}
}

// Handle returns the customers in repository order; an empty result is an empty slice.
func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]views.CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result, _, err := caching.Load(ctx, h.cache, caching.CustomersKey(),
		func(ctx context.Context) ([]views.CustomerView, bool, error) {
			customers, err := h.repo.GetAll(ctx)
			if err != nil {
				return nil, false, err
			}
			return views.FromCustomers(customers), true, nil
		})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []views.CustomerView{}
	}
	return result, nil
}
