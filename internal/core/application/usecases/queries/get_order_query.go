// Package queries contains read operations. Single entities and unfiltered lists are
// served through the read-through cache; the repository is only hit on a cache miss.
// Name searches and per-customer order lists always go to the repository.
package queries

import (
	"errors"
	"strings"

	"delivery-api/internal/pkg/errs"
	"delivery-api/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by id.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	view, found, err := handler.Handle(ctx, query)
//	if err == nil && !found {
//	    // respond 404
//	}
type GetOrderQuery struct {
	id string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(id string) (GetOrderQuery, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("id")
	}
	return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) ID() string {
	return q.id
}
