package commands

import (
	"errors"

	"delivery-api/internal/core/domain/model/kernel"
	"delivery-api/internal/pkg/errs"
	"delivery-api/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name  string
	price decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateProductCommand requires a name and a price in [0, kernel.MaxMoney].
func NewCreateProductCommand(name string, price decimal.Decimal) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireField(&cmd.name, "name", name),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() || price.Round(kernel.MoneyScale).GreaterThan(kernel.MaxMoney) {
		return errs.NewValueIsOutOfRangeError("price", price.String(), 0, kernel.MaxMoney.String())
	}

	c.price = price
	return nil
}
