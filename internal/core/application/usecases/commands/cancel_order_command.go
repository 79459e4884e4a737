package commands

import (
	"errors"
	"strings"

	"delivery-api/internal/pkg/errs"
	"delivery-api/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID string) (CancelOrderCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return CancelOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() string {
	return c.orderID
}
