// Package views holds the read projections returned by command and query handlers.
// Projections are plain serializable structs; they are also the payload stored in the cache.
package views

import (
	"time"

	"delivery-api/internal/core/domain/model/customer"
	"delivery-api/internal/core/domain/model/kernel"
	"delivery-api/internal/core/domain/model/order"
	"delivery-api/internal/core/domain/model/product"
)

type OrderItemView struct {
	ProductID  string       `json:"productId"`
	Quantity   int          `json:"quantity"`
	UnitPrice  kernel.Money `json:"unitPrice"`
	TotalPrice kernel.Money `json:"totalPrice"`
}

type OrderView struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Items      []OrderItemView `json:"items"`
	Status     string          `json:"status"`
	Total      kernel.Money    `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type CustomerView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

type ProductView struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Price kernel.Money `json:"price"`
}

func FromOrder(o *order.Order) OrderView {
	items := make([]OrderItemView, 0, o.Items().Len())
	for _, item := range o.Items().All() {
		items = append(items, OrderItemView{
			ProductID:  item.ProductID(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}

	return OrderView{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Items:      items,
		Status:     o.Status().String(),
		Total:      o.Total(),
		CreatedAt:  o.CreatedAt(),
	}
}

func FromOrders(orders []*order.Order) []OrderView {
	result := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromOrder(o))
	}
	return result
}

func FromCustomer(c *customer.Customer) CustomerView {
	return CustomerView{
		ID:       c.ID(),
		Name:     c.Name(),
		Email:    c.Email(),
		Document: c.Document(),
	}
}

func FromCustomers(customers []*customer.Customer) []CustomerView {
	result := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		result = append(result, FromCustomer(c))
	}
	return result
}

func FromProduct(p *product.Product) ProductView {
	return ProductView{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

func FromProducts(products []*product.Product) []ProductView {
	result := make([]ProductView, 0, len(products))
	for _, p := range products {
		result = append(result, FromProduct(p))
	}
	return result
}
