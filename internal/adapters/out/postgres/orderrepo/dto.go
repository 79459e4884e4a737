// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored in the orders table and its items in order_items, keyed by position.
package orderrepo

import (
	"time"

	"delivery-api/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Total is denormalized for reporting; the aggregate recomputes it from items on load.
type OrderDTO struct {
	ID         string          `gorm:"type:varchar(64);primaryKey"`
	CustomerID string          `gorm:"type:varchar(64);not null;index"`
	Status     string          `gorm:"type:varchar(20);not null;index"`
	Total      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	Items      []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order.
type OrderItemDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   string          `gorm:"type:varchar(64);not null;index"`
	Position  int             `gorm:"not null"`
	ProductID string          `gorm:"type:varchar(64);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, aggregate.Items().Len())
	for i, item := range aggregate.Items().All() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID(),
			Position:  i,
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().String(),
		Total:      aggregate.Total().Decimal(),
		CreatedAt:  aggregate.CreatedAt(),
		Items:      items,
	}
}

// toDomain converts a database DTO with preloaded items to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, dto.CustomerID, items, status, dto.CreatedAt)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
