// Package servers holds the HTTP contract of the API described by openapi.yaml:
// request and parameter types, the server interface and its echo router bindings.
package servers

import (
	"github.com/shopspring/decimal"
)

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Defines values for OrderStatus.
const (
	CREATED   OrderStatus = "CREATED"
	CONFIRMED OrderStatus = "CONFIRMED"
	SHIPPED   OrderStatus = "SHIPPED"
	DELIVERED OrderStatus = "DELIVERED"
	CANCELED  OrderStatus = "CANCELED"
)

// NewCustomer defines model for NewCustomer.
type NewCustomer struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,max=255,email"`
	Document string `json:"document" validate:"required,min=11,max=14"`
}

// NewProduct defines model for NewProduct.
type NewProduct struct {
	Name  string           `json:"name" validate:"required,max=255"`
	Price *decimal.Decimal `json:"price" validate:"required,gte=0,lte=99999999.99"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	ProductId string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=1000"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CustomerId string         `json:"customerId" validate:"required"`
	Items      []NewOrderItem `json:"items" validate:"required,min=1,dive"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Status OrderStatus `json:"status" validate:"required"`
}

// Problem defines model for Problem.
type Problem struct {
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Status      int               `json:"status"`
	Detail      string            `json:"detail,omitempty"`
	Instance    string            `json:"instance,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// Page defines model for Page.
type Page = int

// Size defines model for Size.
type Size = int

// ListCustomersParams defines parameters for ListCustomers.
type ListCustomersParams struct {
	Page *Page `form:"page,omitempty" json:"page,omitempty"`
	Size *Size `form:"size,omitempty" json:"size,omitempty"`
}

// ListProductsParams defines parameters for ListProducts.
type ListProductsParams struct {
	Name *string `form:"name,omitempty" json:"name,omitempty"`
	Page *Page   `form:"page,omitempty" json:"page,omitempty"`
	Size *Size   `form:"size,omitempty" json:"size,omitempty"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
	Page   *Page        `form:"page,omitempty" json:"page,omitempty"`
	Size   *Size        `form:"size,omitempty" json:"size,omitempty"`
}

// CreateCustomerJSONRequestBody defines body for CreateCustomer for application/json ContentType.
type CreateCustomerJSONRequestBody = NewCustomer

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = NewProduct

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = StatusUpdate
