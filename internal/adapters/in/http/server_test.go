package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "delivery-api/internal/adapters/in/http"
	"delivery-api/internal/core/application/usecases/commands"
	"delivery-api/internal/core/application/usecases/queries"
	"delivery-api/internal/core/application/views"
	"delivery-api/internal/core/domain/model/kernel"
	"delivery-api/internal/core/domain/model/order"
	"delivery-api/internal/generated/servers"
	"delivery-api/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type ServerTestSuite struct {
	suite.Suite

	createCustomer     *MockCreateCustomerHandler
	createProduct      *MockCreateProductHandler
	createOrder        *MockCreateOrderHandler
	updateOrderStatus  *MockUpdateOrderStatusHandler
	cancelOrder        *MockCancelOrderHandler
	getCustomer        *MockGetCustomerHandler
	listCustomers      *MockListCustomersHandler
	listCustomerOrders *MockListCustomerOrdersHandler
	getProduct         *MockGetProductHandler
	listProducts       *MockListProductsHandler
	getOrder           *MockGetOrderHandler
	listOrders         *MockListOrdersHandler

	logs   *observer.ObservedLogs
	router *echo.Echo
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.createCustomer = &MockCreateCustomerHandler{}
	s.createProduct = &MockCreateProductHandler{}
	s.createOrder = &MockCreateOrderHandler{}
	s.updateOrderStatus = &MockUpdateOrderStatusHandler{}
	s.cancelOrder = &MockCancelOrderHandler{}
	s.getCustomer = &MockGetCustomerHandler{}
	s.listCustomers = &MockListCustomersHandler{}
	s.listCustomerOrders = &MockListCustomerOrdersHandler{}
	s.getProduct = &MockGetProductHandler{}
	s.listProducts = &MockListProductsHandler{}
	s.getOrder = &MockGetOrderHandler{}
	s.listOrders = &MockListOrdersHandler{}

	core, logs := observer.New(zap.ErrorLevel)
	s.logs = logs

	server := api.NewServer(api.Handlers{
		CreateCustomer:     s.createCustomer,
		CreateProduct:      s.createProduct,
		CreateOrder:        s.createOrder,
		UpdateOrderStatus:  s.updateOrderStatus,
		CancelOrder:        s.cancelOrder,
		GetCustomer:        s.getCustomer,
		ListCustomers:      s.listCustomers,
		ListCustomerOrders: s.listCustomerOrders,
		GetProduct:         s.getProduct,
		ListProducts:       s.listProducts,
		GetOrder:           s.getOrder,
		ListOrders:         s.listOrders,
	})

	router, err := api.NewRouter(server, api.RouterConfig{
		Logger:   zap.New(core),
		Registry: prometheus.NewRegistry(),
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *ServerTestSuite) TearDownTest() {
	mock.AssertExpectationsForObjects(s.T(),
		s.createCustomer, s.createProduct, s.createOrder, s.updateOrderStatus, s.cancelOrder,
		s.getCustomer, s.listCustomers, s.listCustomerOrders, s.getProduct, s.listProducts,
		s.getOrder, s.listOrders,
	)
}

func (s *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) problem(rec *httptest.ResponseRecorder) servers.Problem {
	s.Equal("application/problem+json", rec.Header().Get(echo.HeaderContentType))

	var p servers.Problem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &p))
	s.Equal(rec.Code, p.Status)
	return p
}

func sampleOrder(status string) views.OrderView {
	return views.OrderView{
		ID:         "order-1",
		CustomerID: "customer-1",
		Items: []views.OrderItemView{{
			ProductID:  "product-1",
			Quantity:   2,
			UnitPrice:  kernel.MustMoney("37.24"),
			TotalPrice: kernel.MustMoney("74.48"),
		}},
		Status:    status,
		Total:     kernel.MustMoney("74.48"),
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func (s *ServerTestSuite) Test_CreateOrder_Created() {
	s.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		lines := cmd.Lines()
		return cmd.CustomerID() == "customer-1" && len(lines) == 1 &&
			lines[0].ProductID == "product-1" && lines[0].Quantity == 2
	})).Return(sampleOrder("CREATED"), nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/orders",
		`{"customerId":"customer-1","items":[{"productId":"product-1","quantity":2}]}`)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"total":74.48`)
	s.Contains(rec.Body.String(), `"status":"CREATED"`)
}

func (s *ServerTestSuite) Test_CreateOrder_ValidationErrors() {
	rec := s.do(http.MethodPost, "/api/v1/orders",
		`{"customerId":"","items":[{"productId":"product-1","quantity":0}]}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	p := s.problem(rec)
	s.Equal("https://delivery-api.com/problems/validation-error", p.Type)
	s.Equal("/api/v1/orders", p.Instance)
	s.Equal("must not be blank", p.FieldErrors["customerId"])
	s.Contains(p.FieldErrors, "items[0].quantity")
}

func (s *ServerTestSuite) Test_CreateOrder_QuantityAboveCap() {
	rec := s.do(http.MethodPost, "/api/v1/orders",
		`{"customerId":"customer-1","items":[{"productId":"product-1","quantity":1001}]}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("must be less than or equal to 1000", s.problem(rec).FieldErrors["items[0].quantity"])
}

func (s *ServerTestSuite) Test_CreateOrder_TotalTooLarge() {
	s.createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(views.OrderView{}, errs.NewValueIsOutOfRangeError("total", "99999999990.00", "0", "99999999.99")).Once()

	rec := s.do(http.MethodPost, "/api/v1/orders",
		`{"customerId":"customer-1","items":[{"productId":"product-1","quantity":1000}]}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) Test_CreateOrder_EmptyItems() {
	rec := s.do(http.MethodPost, "/api/v1/orders", `{"customerId":"customer-1","items":[]}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.problem(rec).FieldErrors, "items")
}

func (s *ServerTestSuite) Test_CreateOrder_MalformedBody() {
	rec := s.do(http.MethodPost, "/api/v1/orders", `{"customerId":`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("https://delivery-api.com/problems/validation-error", s.problem(rec).Type)
}

func (s *ServerTestSuite) Test_CreateOrder_UnknownCustomer() {
	s.createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(views.OrderView{}, errs.NewObjectNotFoundError("customer", "missing")).Once()

	rec := s.do(http.MethodPost, "/api/v1/orders",
		`{"customerId":"missing","items":[{"productId":"product-1","quantity":1}]}`)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("https://delivery-api.com/problems/resource-not-found", s.problem(rec).Type)
}

func (s *ServerTestSuite) Test_GetOrder() {
	s.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
		return q.ID() == "order-1"
	})).Return(sampleOrder("CONFIRMED"), true, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/orders/order-1", "")

	s.Equal(http.StatusOK, rec.Code)

	var got map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("order-1", got["id"])
	s.Equal("CONFIRMED", got["status"])
	s.Equal("2025-01-02T03:04:05Z", got["createdAt"])
}

func (s *ServerTestSuite) Test_GetOrder_NotFound() {
	s.getOrder.On("Handle", mock.Anything, mock.Anything).Return(views.OrderView{}, false, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/orders/missing", "")

	s.Equal(http.StatusNotFound, rec.Code)
	p := s.problem(rec)
	s.Equal("Resource Not Found", p.Title)
	s.Contains(p.Detail, "missing")
}

func (s *ServerTestSuite) Test_ListOrders_FilteredAndPaged() {
	all := []views.OrderView{sampleOrder("SHIPPED"), sampleOrder("SHIPPED"), sampleOrder("SHIPPED")}
	s.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		return q.Status() == order.Shipped
	})).Return(all, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/orders?status=SHIPPED&page=1&size=2", "")

	s.Equal(http.StatusOK, rec.Code)

	var page views.Page[views.OrderView]
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &page))
	s.Len(page.Content, 1)
	s.Equal(1, page.Page)
	s.Equal(2, page.Size)
	s.Equal(3, page.TotalElements)
	s.Equal(2, page.TotalPages)
	s.False(page.First)
	s.True(page.Last)
}

func (s *ServerTestSuite) Test_ListOrders_Defaults() {
	s.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		return q.Status() == order.Unknown
	})).Return([]views.OrderView{}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/orders", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"content":[],"page":0,"size":20,"totalElements":0,"totalPages":0,"first":true,"last":true}`,
		rec.Body.String())
}

func (s *ServerTestSuite) Test_ListOrders_HugePageIsEmpty() {
	s.listOrders.On("Handle", mock.Anything, mock.Anything).
		Return([]views.OrderView{sampleOrder("CREATED")}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/orders?page=184467440737095516&size=100", "")

	s.Equal(http.StatusOK, rec.Code)

	var page views.Page[views.OrderView]
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &page))
	s.Empty(page.Content)
	s.Equal(184467440737095516, page.Page)
	s.Equal(1, page.TotalElements)
	s.True(page.Last)
}

func (s *ServerTestSuite) Test_ListOrders_UnknownStatus() {
	rec := s.do(http.MethodGet, "/api/v1/orders?status=LOST", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("https://delivery-api.com/problems/business-rule-violation", s.problem(rec).Type)
}

func (s *ServerTestSuite) Test_ListOrders_MalformedPage() {
	rec := s.do(http.MethodGet, "/api/v1/orders?page=first", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("https://delivery-api.com/problems/validation-error", s.problem(rec).Type)
}

func (s *ServerTestSuite) Test_UpdateOrderStatus() {
	s.updateOrderStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
		return cmd.OrderID() == "order-1" && cmd.Status() == order.Shipped
	})).Return(sampleOrder("SHIPPED"), true, nil).Once()

	rec := s.do(http.MethodPatch, "/api/v1/orders/order-1/status", `{"status":"SHIPPED"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"SHIPPED"`)
}

func (s *ServerTestSuite) Test_UpdateOrderStatus_TerminalOrder() {
	s.updateOrderStatus.On("Handle", mock.Anything, mock.Anything).
		Return(views.OrderView{}, false, errs.NewStateIsInvalidErrorWithCause("status",
			errors.New("cannot change status of a DELIVERED order"))).Once()

	rec := s.do(http.MethodPatch, "/api/v1/orders/order-1/status", `{"status":"CONFIRMED"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	p := s.problem(rec)
	s.Equal("https://delivery-api.com/problems/business-rule-violation", p.Type)
	s.Contains(p.Detail, "DELIVERED")
}

func (s *ServerTestSuite) Test_UpdateOrderStatus_MissingStatus() {
	rec := s.do(http.MethodPatch, "/api/v1/orders/order-1/status", `{}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("must not be blank", s.problem(rec).FieldErrors["status"])
}

func (s *ServerTestSuite) Test_UpdateOrderStatus_NotFound() {
	s.updateOrderStatus.On("Handle", mock.Anything, mock.Anything).Return(views.OrderView{}, false, nil).Once()

	rec := s.do(http.MethodPatch, "/api/v1/orders/missing/status", `{"status":"CONFIRMED"}`)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) Test_CancelOrder() {
	s.cancelOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
		return cmd.OrderID() == "order-1"
	})).Return(sampleOrder("CANCELED"), true, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/orders/order-1/cancel", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"CANCELED"`)
}

func (s *ServerTestSuite) Test_CreateCustomer() {
	s.createCustomer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateCustomerCommand) bool {
		return cmd.Name() == "Ana Souza" && cmd.Email() == "ana@example.com" && cmd.Document() == "12345678901"
	})).Return(views.CustomerView{
		ID:       "customer-1",
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Document: "12345678901",
	}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/customers",
		`{"name":"Ana Souza","email":"ana@example.com","document":"12345678901"}`)

	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"id":"customer-1","name":"Ana Souza","email":"ana@example.com","document":"12345678901"}`,
		rec.Body.String())
}

func (s *ServerTestSuite) Test_CreateCustomer_ValidationErrors() {
	rec := s.do(http.MethodPost, "/api/v1/customers", `{"name":"A","email":"not-an-email","document":"123"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	p := s.problem(rec)
	s.Equal("size must be at least 2", p.FieldErrors["name"])
	s.Equal("must be a well-formed email address", p.FieldErrors["email"])
	s.Equal("size must be at least 11", p.FieldErrors["document"])
}

func (s *ServerTestSuite) Test_CreateCustomer_EmailWiderThanColumn() {
	email := "a@" + strings.Repeat("example.", 32) + "com"

	rec := s.do(http.MethodPost, "/api/v1/customers",
		`{"name":"Ana Souza","email":"`+email+`","document":"12345678901"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("size must be at most 255", s.problem(rec).FieldErrors["email"])
}

func (s *ServerTestSuite) Test_CreateCustomer_Duplicate() {
	s.createCustomer.On("Handle", mock.Anything, mock.Anything).
		Return(views.CustomerView{}, errs.NewObjectAlreadyExistsError("email", "ana@example.com")).Once()

	rec := s.do(http.MethodPost, "/api/v1/customers",
		`{"name":"Ana Souza","email":"ana@example.com","document":"12345678901"}`)

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("https://delivery-api.com/problems/conflict", s.problem(rec).Type)
}

func (s *ServerTestSuite) Test_GetCustomer_NotFound() {
	s.getCustomer.On("Handle", mock.Anything, mock.Anything).Return(views.CustomerView{}, false, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/customers/missing", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) Test_ListCustomers_Paged() {
	s.listCustomers.On("Handle", mock.Anything, mock.Anything).Return([]views.CustomerView{
		{ID: "c1", Name: "Ana"},
		{ID: "c2", Name: "Bruno"},
	}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/customers?size=1", "")

	s.Equal(http.StatusOK, rec.Code)

	var page views.Page[views.CustomerView]
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &page))
	s.Require().Len(page.Content, 1)
	s.Equal("c1", page.Content[0].ID)
	s.Equal(2, page.TotalPages)
}

func (s *ServerTestSuite) Test_ListCustomerOrders() {
	s.listCustomerOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListCustomerOrdersQuery) bool {
		return q.CustomerID() == "customer-1"
	})).Return([]views.OrderView{sampleOrder("CREATED")}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/customers/customer-1/orders", "")

	s.Equal(http.StatusOK, rec.Code)

	var got []views.OrderView
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Len(got, 1)
}

func (s *ServerTestSuite) Test_CreateProduct_FreeProductAccepted() {
	s.createProduct.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateProductCommand) bool {
		return cmd.Name() == "Sticker" && cmd.Price().IsZero()
	})).Return(views.ProductView{ID: "p1", Name: "Sticker", Price: kernel.ZeroMoney()}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/products", `{"name":"Sticker","price":0}`)

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *ServerTestSuite) Test_CreateProduct_NegativePrice() {
	rec := s.do(http.MethodPost, "/api/v1/products", `{"name":"Sticker","price":-1.5}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("must be greater than or equal to 0", s.problem(rec).FieldErrors["price"])
}

func (s *ServerTestSuite) Test_CreateProduct_PriceAboveColumnPrecision() {
	rec := s.do(http.MethodPost, "/api/v1/products", `{"name":"Sticker","price":100000000}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("must be less than or equal to 99999999.99", s.problem(rec).FieldErrors["price"])
}

func (s *ServerTestSuite) Test_CreateProduct_NameWiderThanColumn() {
	rec := s.do(http.MethodPost, "/api/v1/products",
		`{"name":"`+strings.Repeat("x", 256)+`","price":1}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("size must be at most 255", s.problem(rec).FieldErrors["name"])
}

func (s *ServerTestSuite) Test_CreateProduct_MissingPrice() {
	rec := s.do(http.MethodPost, "/api/v1/products", `{"name":"Sticker"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("must not be blank", s.problem(rec).FieldErrors["price"])
}

func (s *ServerTestSuite) Test_ListProducts_ByName() {
	s.listProducts.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListProductsQuery) bool {
		return q.Name() == "key"
	})).Return([]views.ProductView{{ID: "p1", Name: "Keyboard", Price: kernel.MustMoney("99.90")}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/products?name=key", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"price":99.90`)
}

func (s *ServerTestSuite) Test_GetProduct_NotFound() {
	s.getProduct.On("Handle", mock.Anything, mock.Anything).Return(views.ProductView{}, false, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/products/missing", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) Test_UnexpectedError_IsHiddenAndLogged() {
	s.getProduct.On("Handle", mock.Anything, mock.Anything).
		Return(views.ProductView{}, false, errors.New("connection reset by peer")).Once()

	rec := s.do(http.MethodGet, "/api/v1/products/p1", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	p := s.problem(rec)
	s.Equal("An unexpected error occurred", p.Detail)
	s.NotContains(rec.Body.String(), "connection reset")
	s.Equal(1, s.logs.FilterMessage("request failed").Len())
}

func (s *ServerTestSuite) Test_UnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/invoices", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("https://delivery-api.com/problems/resource-not-found", s.problem(rec).Type)
}

func (s *ServerTestSuite) Test_Health() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerTestSuite) Test_OpenAPIDocument() {
	rec := s.do(http.MethodGet, "/openapi.json", "")

	s.Equal(http.StatusOK, rec.Code)

	var doc map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &doc))
	s.Contains(doc, "paths")
}

func (s *ServerTestSuite) Test_SwaggerUI() {
	rec := s.do(http.MethodGet, "/swagger/index.html", "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) Test_Metrics_CountRequestsByRoute() {
	s.getOrder.On("Handle", mock.Anything, mock.Anything).Return(views.OrderView{}, false, nil).Once()
	s.do(http.MethodGet, "/api/v1/orders/missing", "")

	rec := s.do(http.MethodGet, "/metrics", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(),
		`delivery_http_requests_total{method="GET",route="/api/v1/orders/:id",status="404"} 1`)
}

func TestRequestValidator_NestedFieldPaths(t *testing.T) {
	v := api.NewRequestValidator()

	err := v.Validate(&servers.NewOrder{
		CustomerId: "customer-1",
		Items:      []servers.NewOrderItem{{ProductId: "p1", Quantity: 1}, {ProductId: "", Quantity: 1}},
	})

	var validationErr *api.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, map[string]string{"items[1].productId": "must not be blank"}, validationErr.Fields)
}
