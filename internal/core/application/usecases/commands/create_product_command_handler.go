package commands

import (
	"context"
	"fmt"

	"delivery-api/internal/core/application/caching"
	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/domain/model/kernel"
	"delivery-api/internal/core/domain/model/product"
)

type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	cache      CacheInvalidator
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, cache CacheInvalidator) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle adds a catalog product. Product names are not required to be unique.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (views.ProductView, error) {
	if err := cmd.Validate(); err != nil {
		return views.ProductView{}, err
	}

	p, err := product.NewProduct(kernel.NewUUID().String(), cmd.Name(), cmd.Price())
	if err != nil {
		return views.ProductView{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return views.ProductView{}, fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return views.ProductView{}, fmt.Errorf("add product: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return views.ProductView{}, fmt.Errorf("commit: %w", err)
	}

	h.cache.Invalidate(ctx, caching.ProductKeys(p.ID())...)

	return views.FromProduct(p), nil
}
