// Package order provides the Order aggregate of the delivery domain: the order itself,
// its immutable line items and the status guard that drives its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding identity, customer reference, items and status
//   - Item: an immutable product line with quantity and snapshotted unit price
//   - Items: a read-only view over the item sequence of an order
//   - Status: the lifecycle states and their textual form
//
// Key business rules:
//   - An order always has an id, a customer and at least one item
//   - The total is the exact decimal sum of unitPrice x quantity over all items
//   - New orders start as CREATED; an order can never be moved back to CREATED
//   - DELIVERED and CANCELED are terminal: no transition leaves them
//   - Any other transition between CONFIRMED, SHIPPED, DELIVERED and CANCELED is accepted
package order
