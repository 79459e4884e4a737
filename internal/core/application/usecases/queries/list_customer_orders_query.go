package queries

import (
	"errors"
	"strings"

	"delivery-api/internal/pkg/errs"
	"delivery-api/internal/pkg/guard"
)

var (
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
)

// ListCustomerOrdersQuery lists the orders placed by one customer.
type ListCustomerOrdersQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery trims customerID and rejects a blank one.
func NewListCustomerOrdersQuery(customerID string) (ListCustomerOrdersQuery, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return ListCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customerId")
	}
	return ListCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) CustomerID() string {
	return q.customerID
}
