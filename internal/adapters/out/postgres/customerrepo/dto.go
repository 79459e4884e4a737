// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"delivery-api/internal/core/domain/model/customer"
)

// CustomerDTO represents a row of the customers table.
type CustomerDTO struct {
	ID       string `gorm:"type:varchar(64);primaryKey"`
	Name     string `gorm:"type:varchar(100);not null"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Document string `gorm:"type:varchar(20);not null;uniqueIndex"`
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:       c.ID(),
		Name:     c.Name(),
		Email:    c.Email(),
		Document: c.Document(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(dto.ID, dto.Name, dto.Email, dto.Document)
}
