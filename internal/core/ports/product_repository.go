package ports

import (
	"context"

	"delivery-api/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error

	// Get returns errs.ErrObjectNotFound on a miss.
	Get(ctx context.Context, id string) (*product.Product, error)

	// GetAll returns every product ordered by name.
	GetAll(ctx context.Context) ([]*product.Product, error)

	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error

	// GetByNameContaining matches name case-insensitively.
	GetByNameContaining(ctx context.Context, name string) ([]*product.Product, error)
}
