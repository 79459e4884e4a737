package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"delivery-api/internal/core/application/usecases/commands"
	"delivery-api/internal/core/application/usecases/queries"
	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/domain/model/order"
	"delivery-api/internal/generated/servers"
	"delivery-api/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (views.CustomerView, error)
	}
	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) (views.ProductView, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (views.OrderView, error)
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (views.OrderView, bool, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (views.OrderView, bool, error)
	}
	GetCustomerHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerQuery) (views.CustomerView, bool, error)
	}
	ListCustomersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomersQuery) ([]views.CustomerView, error)
	}
	ListCustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]views.OrderView, error)
	}
	GetProductHandler interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (views.ProductView, bool, error)
	}
	ListProductsHandler interface {
		Handle(ctx context.Context, query queries.ListProductsQuery) ([]views.ProductView, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (views.OrderView, bool, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]views.OrderView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCustomer     CreateCustomerHandler
	CreateProduct      CreateProductHandler
	CreateOrder        CreateOrderHandler
	UpdateOrderStatus  UpdateOrderStatusHandler
	CancelOrder        CancelOrderHandler
	GetCustomer        GetCustomerHandler
	ListCustomers      ListCustomersHandler
	ListCustomerOrders ListCustomerOrdersHandler
	GetProduct         GetProductHandler
	ListProducts       ListProductsHandler
	GetOrder           GetOrderHandler
	ListOrders         ListOrdersHandler
}

// Server implements servers.ServerInterface on top of the application use cases.
// Handlers return errors; the problem-details error handler renders them.
type Server struct {
	handlers Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context, params servers.ListCustomersParams) error {
	customers, err := s.handlers.ListCustomers.Handle(ctx.Request().Context(), queries.NewListCustomersQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, views.Paginate(customers, intOr(params.Page, views.DefaultPage),
		intOr(params.Size, views.DefaultPageSize)))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.Email, body.Document)
	if err != nil {
		return err
	}

	customer, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, customer)
}

// GetCustomer handles GET /api/v1/customers/{id}.
func (s *Server) GetCustomer(ctx echo.Context, id string) error {
	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return err
	}

	customer, found, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("customer", id)
	}

	return ctx.JSON(http.StatusOK, customer)
}

// ListCustomerOrders handles GET /api/v1/customers/{id}/orders.
func (s *Server) ListCustomerOrders(ctx echo.Context, id string) error {
	query, err := queries.NewListCustomerOrdersQuery(id)
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orders)
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	name := ""
	if params.Name != nil {
		name = *params.Name
	}

	products, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery(name))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, views.Paginate(products, intOr(params.Page, views.DefaultPage),
		intOr(params.Size, views.DefaultPageSize)))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(body.Name, *body.Price)
	if err != nil {
		return err
	}

	product, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, product)
}

// GetProduct handles GET /api/v1/products/{id}.
func (s *Server) GetProduct(ctx echo.Context, id string) error {
	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return err
	}

	product, found, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("product", id)
	}

	return ctx.JSON(http.StatusOK, product)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query := queries.NewListOrdersQuery()
	if params.Status != nil {
		status, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return err
		}
		if query, err = queries.NewListOrdersByStatusQuery(status); err != nil {
			return err
		}
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, views.Paginate(orders, intOr(params.Page, views.DefaultPage),
		intOr(params.Size, views.DefaultPageSize)))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, commands.OrderLine{ProductID: item.ProductId, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(body.CustomerId, lines)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id string) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	found, ok, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewObjectNotFoundError("order", id)
	}

	return ctx.JSON(http.StatusOK, found)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id string) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return err
	}

	updated, ok, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewObjectNotFoundError("order", id)
	}

	return ctx.JSON(http.StatusOK, updated)
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id string) error {
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}

	canceled, ok, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewObjectNotFoundError("order", id)
	}

	return ctx.JSON(http.StatusOK, canceled)
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", unwrapBindError(err)))
	}

	return ctx.Validate(body)
}

func unwrapBindError(err error) any {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Message
	}
	return err
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
