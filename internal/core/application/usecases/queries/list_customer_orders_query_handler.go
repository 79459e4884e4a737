package queries

import (
	"context"

	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/ports"
	"delivery-api/internal/pkg/errs"
)

// ListCustomerOrdersQueryHandler lists the orders of one customer. It is not
// cached: order changes only invalidate the order keys, not per-customer ones.
//
// Example:
//
//	handler := NewListCustomerOrdersQueryHandler(orderRepo, customerRepo)
//	query, err := NewListCustomerOrdersQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return err // unknown customer
//	}
type ListCustomerOrdersQueryHandler struct {
	orders    ports.OrderRepository
	customers ports.CustomerRepository
}

// NewListCustomerOrdersQueryHandler creates a handler that checks the customer
// exists before reading its orders.
func NewListCustomerOrdersQueryHandler(
	orders ports.OrderRepository,
	customers ports.CustomerRepository,
) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{orders: orders, customers: customers}
}

// Handle fails with errs.ErrObjectNotFound for an unknown customer.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]views.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	exists, err := h.customers.Exists(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", query.CustomerID())
	}

	orders, err := h.orders.GetByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}
	return views.FromOrders(orders), nil
}
