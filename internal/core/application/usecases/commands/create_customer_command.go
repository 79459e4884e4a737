package commands

import (
	"errors"
	"strings"

	"delivery-api/internal/pkg/errs"
	"delivery-api/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
)

// CreateCustomerCommand registers a customer. Format rules (email shape, document
// length) are checked by the HTTP layer and the customer entity; the command only
// requires presence.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	document string

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(name, email, document string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireField(&cmd.name, "name", name),
		requireField(&cmd.email, "email", email),
		requireField(&cmd.document, "document", document),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) Email() string {
	return c.email
}

func (c CreateCustomerCommand) Document() string {
	return c.document
}

func requireField(dst *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
