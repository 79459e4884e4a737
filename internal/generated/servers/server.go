package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List customers
	// (GET /customers)
	ListCustomers(ctx echo.Context, params ListCustomersParams) error
	// Create a customer
	// (POST /customers)
	CreateCustomer(ctx echo.Context) error
	// Get a customer by id
	// (GET /customers/{id})
	GetCustomer(ctx echo.Context, id string) error
	// List the orders of a customer
	// (GET /customers/{id}/orders)
	ListCustomerOrders(ctx echo.Context, id string) error
	// List products, optionally filtered by name
	// (GET /products)
	ListProducts(ctx echo.Context, params ListProductsParams) error
	// Create a product
	// (POST /products)
	CreateProduct(ctx echo.Context) error
	// Get a product by id
	// (GET /products/{id})
	GetProduct(ctx echo.Context, id string) error
	// List orders, optionally filtered by status
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Place an order
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Get an order by id
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id string) error
	// Cancel an order that has not been delivered
	// (POST /orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id string) error
	// Move an order to another status
	// (PATCH /orders/{id}/status)
	UpdateOrderStatus(ctx echo.Context, id string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListCustomers converts echo context to params.
func (w *ServerInterfaceWrapper) ListCustomers(ctx echo.Context) error {
	var params ListCustomersParams

	if err := bindPaging(ctx, &params.Page, &params.Size); err != nil {
		return err
	}

	return w.Handler.ListCustomers(ctx, params)
}

// CreateCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

// GetCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) GetCustomer(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetCustomer(ctx, id)
}

// ListCustomerOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListCustomerOrders(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.ListCustomerOrders(ctx, id)
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var params ListProductsParams

	err := runtime.BindQueryParameter("form", true, false, "name", ctx.QueryParams(), &params.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter name: %s", err))
	}

	if err := bindPaging(ctx, &params.Page, &params.Size); err != nil {
		return err
	}

	return w.Handler.ListProducts(ctx, params)
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

// GetProduct converts echo context to params.
func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetProduct(ctx, id)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	if err := bindPaging(ctx, &params.Page, &params.Size); err != nil {
		return err
	}

	return w.Handler.ListOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, id)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.CancelOrder(ctx, id)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.UpdateOrderStatus(ctx, id)
}

func bindID(ctx echo.Context) (string, error) {
	var id string

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

func bindPaging(ctx echo.Context, page **Page, size **Size) error {
	err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	return nil
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group to allow
// either of them to be used for routing.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that
// the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/customers", wrapper.ListCustomers)
	router.POST(baseURL+"/customers", wrapper.CreateCustomer)
	router.GET(baseURL+"/customers/:id", wrapper.GetCustomer)
	router.GET(baseURL+"/customers/:id/orders", wrapper.ListCustomerOrders)
	router.GET(baseURL+"/products", wrapper.ListProducts)
	router.POST(baseURL+"/products", wrapper.CreateProduct)
	router.GET(baseURL+"/products/:id", wrapper.GetProduct)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/:id", wrapper.GetOrder)
	router.POST(baseURL+"/orders/:id/cancel", wrapper.CancelOrder)
	router.PATCH(baseURL+"/orders/:id/status", wrapper.UpdateOrderStatus)
}
