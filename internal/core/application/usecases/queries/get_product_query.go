package queries

import (
	"errors"
	"strings"

	"delivery-api/internal/pkg/errs"
	"delivery-api/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// GetProductQuery retrieves a single product by id.
type GetProductQuery struct {
	id string

	guard guard.ConstructorGuard
}

// NewGetProductQuery trims id and rejects a blank one.
func NewGetProductQuery(id string) (GetProductQuery, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return GetProductQuery{}, errs.NewValueIsRequiredError("id")
	}
	return GetProductQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ID() string {
	return q.id
}

// ListProductsQuery lists the catalog, optionally filtered by a name fragment.
type ListProductsQuery struct {
	name string

	guard guard.ConstructorGuard
}

// NewListProductsQuery treats a blank name as no filter.
func NewListProductsQuery(name string) ListProductsQuery {
	return ListProductsQuery{name: strings.TrimSpace(name), guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) Name() string {
	return q.name
}
