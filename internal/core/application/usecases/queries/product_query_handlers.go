package queries

import (
	"context"

	"delivery-api/internal/core/application/caching"
	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/ports"
)

// GetProductQueryHandler reads one product through the cache under
// caching.ProductKey.
//
// Example:
//
//	handler := NewGetProductQueryHandler(productRepo, cache)
//	query, err := NewGetProductQuery(productID)
//	if err != nil {
//	    return err
//	}
//
//	product, found, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if found {
//	    fmt.Printf("%s costs %s\n", product.Name, product.Price)
//	}
type GetProductQueryHandler struct {
	repo  ports.ProductRepository
	cache *caching.ReadThrough
}

// NewGetProductQueryHandler creates a handler backed by repo and cache.
func NewGetProductQueryHandler(repo ports.ProductRepository, cache *caching.ReadThrough) GetProductQueryHandler {
	return GetProductQueryHandler{repo: repo, cache: cache}
}

// Handle returns found=false, and no error, when the product does not exist.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (views.ProductView, bool, error) {
	if err := query.Validate(); err != nil {
		return views.ProductView{}, false, err
	}

	return caching.Load(ctx, h.cache, caching.ProductKey(query.ID()),
		func(ctx context.Context) (views.ProductView, bool, error) {
			p, err := h.repo.Get(ctx, query.ID())
			if err != nil {
				return views.ProductView{}, false, notFoundAsMiss(err)
			}
			return views.FromProduct(p), true, nil
		})
}

// ListProductsQueryHandler lists the catalog, optionally filtered by a
// case-insensitive name fragment.
//
// Example:
//
//	handler := NewListProductsQueryHandler(productRepo, cache)
//
//	pizzas, err := handler.Handle(ctx, NewListProductsQuery("pizza"))
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("Found %d pizzas\n", len(pizzas))
type ListProductsQueryHandler struct {
	repo  ports.ProductRepository
	cache *caching.ReadThrough
}

// NewListProductsQueryHandler creates a handler backed by repo and cache.
func NewListProductsQueryHandler(repo ports.ProductRepository, cache *caching.ReadThrough) ListProductsQueryHandler {
	return ListProductsQueryHandler{repo: repo, cache: cache}
}

// Handle caches only the unfiltered list; name searches always hit the repository.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]views.ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Name() != "" {
		products, err := h.repo.GetByNameContaining(ctx, query.Name())
		if err != nil {
			return nil, err
		}
		return views.FromProducts(products), nil
	}

	result, _, err := caching.Load(ctx, h.cache, caching.ProductsKey(),
		func(ctx context.Context) ([]views.ProductView, bool, error) {
			products, err := h.repo.GetAll(ctx)
			if err != nil {
				return nil, false, err
			}
			return views.FromProducts(products), true, nil
		})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []views.ProductView{}
	}
	return result, nil
}
