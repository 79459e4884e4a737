package commands

import (
	"context"
	"errors"
	"fmt"

	"delivery-api/internal/core/application/caching"
	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/domain/model/customer"
	"delivery-api/internal/core/domain/model/kernel"
	"delivery-api/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers a customer with a unique email and document.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	cache      CacheInvalidator
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, cache CacheInvalidator) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle fails with errs.ErrObjectAlreadyExists when the email or the document is taken.
func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomerCommand,
) (views.CustomerView, error) {
	if err := cmd.Validate(); err != nil {
		return views.CustomerView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.CustomerView{}, fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	if err := ensureAbsent(ctx, repo.GetByEmail, "email", cmd.Email()); err != nil {
		return views.CustomerView{}, err
	}
	if err := ensureAbsent(ctx, repo.GetByDocument, "document", cmd.Document()); err != nil {
		return views.CustomerView{}, err
	}

	c, err := customer.NewCustomer(kernel.NewUUID().String(), cmd.Name(), cmd.Email(), cmd.Document())
	if err != nil {
		return views.CustomerView{}, err
	}

	if err = repo.Add(ctx, c); err != nil {
		return views.CustomerView{}, fmt.Errorf("add customer: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return views.CustomerView{}, fmt.Errorf("commit: %w", err)
	}

	h.cache.Invalidate(ctx, caching.CustomerKeys(c.ID())...)

	return views.FromCustomer(c), nil
}

func ensureAbsent(
	ctx context.Context,
	lookup func(ctx context.Context, value string) (*customer.Customer, error),
	field, value string,
) error {
	_, err := lookup(ctx, value)
	switch {
	case err == nil:
		return errs.NewObjectAlreadyExistsError(field, value)
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	default:
		return fmt.Errorf("check %s: %w", field, err)
	}
}
