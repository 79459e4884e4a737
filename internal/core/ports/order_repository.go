// Package ports defines the contracts between the application layer and infrastructure:
// repositories, the unit of work and the cache.
package ports

import (
	"context"

	"delivery-api/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items are stored and loaded together with their order.
type OrderRepository interface {
	// Add persists a new order aggregate with all its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable state (status) of an existing order.
	// Returns errs.ErrObjectNotFound if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ErrObjectNotFound if the order does not exist.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the surrounding transaction ends.
	// Outside a transaction it behaves like Get.
	GetForUpdate(ctx context.Context, id string) (*order.Order, error)

	// Exists reports whether an order with the given id is stored.
	Exists(ctx context.Context, id string) (bool, error)

	// Delete removes an order and its items. Deleting a missing order is not an error.
	Delete(ctx context.Context, id string) error

	// GetAll returns every order, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByStatus returns orders in the given status, oldest first.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetByCustomer returns the orders of one customer, oldest first.
	GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)
}
