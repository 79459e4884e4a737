// Package productrepo persists catalog products with GORM.
package productrepo

import (
	"delivery-api/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents a row of the products table.
type ProductDTO struct {
	ID    string          `gorm:"type:varchar(64);primaryKey"`
	Name  string          `gorm:"type:varchar(255);not null"`
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price().Decimal(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Name, dto.Price)
}
