package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"delivery-api/internal/core/domain/model/kernel"
	"delivery-api/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering context.
//
// Order follows these invariants:
//   - id and customerID are non-blank and never change
//   - items is non-empty and fixed at construction
//   - createdAt is set once
//   - status changes only through AdvanceTo and Cancel
type Order struct {
	id         string
	customerID string
	items      []Item
	status     Status
	createdAt  time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an order in Created status stamped with the current time.
// Every invalid field is reported in the joined error.
//
// Example:
//
//	item, _ := order.NewItem(productID, 2, decimal.RequireFromString("29.99"))
//	o, err := order.NewOrder(kernel.NewUUID().String(), customerID, []order.Item{item})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id string, customerID string, items []Item) (*Order, error) {
	order := &Order{
		status:        Created,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order loaded from storage. It checks the same invariants as
// NewOrder plus a valid status and a non-zero creation time.
func RestoreOrder(id string, customerID string, items []Item, status Status, createdAt time.Time) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setStatus(status),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a read-only view of the order lines.
func (o *Order) Items() Items {
	return Items{items: o.items}
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total sums the line totals. It is derived on every call and never cached.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// AdvanceTo moves the order to newStatus.
//
// Returns:
//   - ErrValueIsInvalid if newStatus is Unknown, out of range, or Created
//   - ErrStateIsInvalid if the order is already Delivered or Canceled
//
// Any other transition is accepted, including skipping states (Created -> Delivered)
// and going back between non-terminal states (Shipped -> Confirmed).
func (o *Order) AdvanceTo(newStatus Status) error {
	status, err := o.status.AdvanceTo(newStatus)
	if err != nil {
		return err
	}

	o.status = status
	return nil
}

// Cancel moves the order to Canceled. Only a Delivered order cannot be canceled.
func (o *Order) Cancel() error {
	status, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	total := kernel.ZeroMoney()
	for _, item := range items {
		if item.productID == "" || item.quantity < 1 {
			return errs.NewValueIsInvalidError("items")
		}
		total = total.Add(item.TotalPrice())
	}
	if total.ExceedsMax() {
		return errs.NewValueIsOutOfRangeError("total", total.String(), "0", kernel.MaxMoney.String())
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
