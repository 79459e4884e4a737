package commands

import (
	"errors"
	"fmt"
	"strings"

	"delivery-api/internal/core/domain/model/order"
	"delivery-api/internal/pkg/errs"
	"delivery-api/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderLine is a requested product and quantity. The price is resolved by the handler.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// CreateOrderCommand represents a request to place an order for an existing customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, []OrderLine{
//	    {ProductID: pizzaID, Quantity: 2},
//	    {ProductID: sodaID, Quantity: 3},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	view, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	lines      []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand requires a customer id and at least one line; every line needs
// a product id and a quantity in [1, order.MaxItemQuantity]. All failures are reported together.
func NewCreateOrderCommand(customerID string, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Lines returns a copy of the requested lines with trimmed product ids.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	normalized := make([]OrderLine, 0, len(lines))
	var lineErrs []error
	for i, line := range lines {
		productID := strings.TrimSpace(line.ProductID)
		if productID == "" {
			lineErrs = append(lineErrs, errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].productId", i)))
		}
		if line.Quantity < 1 || line.Quantity > order.MaxItemQuantity {
			lineErrs = append(lineErrs, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("items[%d].quantity", i), line.Quantity, 1, order.MaxItemQuantity))
		}
		normalized = append(normalized, OrderLine{ProductID: productID, Quantity: line.Quantity})
	}
	if len(lineErrs) > 0 {
		return errors.Join(lineErrs...)
	}

	c.lines = normalized
	return nil
}
