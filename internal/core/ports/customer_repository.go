package ports

import (
	"context"

	"delivery-api/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
// Get, GetByEmail and GetByDocument return errs.ErrObjectNotFound on a miss.
type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, id string) (*customer.Customer, error)
	GetAll(ctx context.Context) ([]*customer.Customer, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
	GetByDocument(ctx context.Context, document string) (*customer.Customer, error)
}
