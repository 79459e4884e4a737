// Package caching implements the read-through and invalidation rules shared by
// command and query handlers.
//
// Key layout:
//
//	order:{id}        single order
//	orders:ALL        unfiltered order list
//	orders:{STATUS}   order list filtered by status
//	customer:{id}     single customer
//	customers         customer list
//	product:{id}      single product
//	products          unfiltered product list
package caching

import (
	"delivery-api/internal/core/domain/model/order"
)

const (
	allOrders    = "ALL"
	customersKey = "customers"
	productsKey  = "products"
)

// OrderKey returns the key of a single order, e.g. order:42.
func OrderKey(id string) string {
	return "order:" + id
}

// OrdersKey returns the list key for status, or orders:ALL for order.Unknown.
func OrdersKey(status order.Status) string {
	if status == order.Unknown {
		return "orders:" + allOrders
	}
	return "orders:" + status.String()
}

// OrderKeys lists every key a change to order id can make stale.
func OrderKeys(id string) []string {
	keys := []string{OrderKey(id), OrdersKey(order.Unknown)}
	for _, s := range order.Statuses() {
		keys = append(keys, OrdersKey(s))
	}
	return keys
}

// CustomerKey returns the key of a single customer.
func CustomerKey(id string) string {
	return "customer:" + id
}

// CustomersKey returns the key of the full customer list.
func CustomersKey() string {
	return customersKey
}

// CustomerKeys lists every key a new or changed customer id makes stale:
// the customer itself and the customer list.
func CustomerKeys(id string) []string {
	return []string{CustomerKey(id), CustomersKey()}
}

// ProductKey returns the key of a single product.
func ProductKey(id string) string {
	return "product:" + id
}

// ProductsKey returns the key of the unfiltered product list. Name-filtered
// listings are not cached.
func ProductsKey() string {
	return productsKey
}

// ProductKeys lists every key a new or changed product id makes stale.
func ProductKeys(id string) []string {
	return []string{ProductKey(id), ProductsKey()}
}
