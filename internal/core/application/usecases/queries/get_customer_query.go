package queries

import (
	"errors"
	"strings"

	"delivery-api/internal/pkg/errs"
	"delivery-api/internal/pkg/guard"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
)

// GetCustomerQuery retrieves a single customer by id.
type GetCustomerQuery struct {
	id string

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery trims id and rejects a blank one.
func NewGetCustomerQuery(id string) (GetCustomerQuery, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return GetCustomerQuery{}, errs.NewValueIsRequiredError("id")
	}
	return GetCustomerQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) ID() string {
	return q.id
}

// ListCustomersQuery lists every customer. It carries no parameters.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates the parameterless listing query.
func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}
