package http_test

import (
	"context"

	"delivery-api/internal/core/application/usecases/commands"
	"delivery-api/internal/core/application/usecases/queries"
	"delivery-api/internal/core/application/views"

	"github.com/stretchr/testify/mock"
)

type MockCreateCustomerHandler struct{ mock.Mock }

func (m *MockCreateCustomerHandler) Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (views.CustomerView, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.CustomerView), args.Error(1)
}

type MockCreateProductHandler struct{ mock.Mock }

func (m *MockCreateProductHandler) Handle(ctx context.Context, cmd commands.CreateProductCommand) (views.ProductView, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.ProductView), args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (views.OrderView, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.OrderView), args.Error(1)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateOrderStatusCommand,
) (views.OrderView, bool, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.OrderView), args.Bool(1), args.Error(2)
}

type MockCancelOrderHandler struct{ mock.Mock }

func (m *MockCancelOrderHandler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (views.OrderView, bool, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.OrderView), args.Bool(1), args.Error(2)
}

type MockGetCustomerHandler struct{ mock.Mock }

func (m *MockGetCustomerHandler) Handle(ctx context.Context, query queries.GetCustomerQuery) (views.CustomerView, bool, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(views.CustomerView), args.Bool(1), args.Error(2)
}

type MockListCustomersHandler struct{ mock.Mock }

func (m *MockListCustomersHandler) Handle(ctx context.Context, query queries.ListCustomersQuery) ([]views.CustomerView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]views.CustomerView), args.Error(1)
}

type MockListCustomerOrdersHandler struct{ mock.Mock }

func (m *MockListCustomerOrdersHandler) Handle(
	ctx context.Context,
	query queries.ListCustomerOrdersQuery,
) ([]views.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]views.OrderView), args.Error(1)
}

type MockGetProductHandler struct{ mock.Mock }

func (m *MockGetProductHandler) Handle(ctx context.Context, query queries.GetProductQuery) (views.ProductView, bool, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(views.ProductView), args.Bool(1), args.Error(2)
}

type MockListProductsHandler struct{ mock.Mock }

func (m *MockListProductsHandler) Handle(ctx context.Context, query queries.ListProductsQuery) ([]views.ProductView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]views.ProductView), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (views.OrderView, bool, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(views.OrderView), args.Bool(1), args.Error(2)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]views.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]views.OrderView), args.Error(1)
}
