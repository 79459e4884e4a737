// Package product holds the Product entity of the catalog.
package product

import (
	"errors"
	"strings"
	"unicode/utf8"

	"delivery-api/internal/core/domain/model/kernel"
	"delivery-api/internal/pkg/errs"
	"delivery-api/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// MaxNameLength is the width of the products.name column.
const MaxNameLength = 255

// Product is immutable once built. Orders copy its price at placement time.
type Product struct {
	id    string
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewProduct requires id and name and a price in [0, kernel.MaxMoney], rounded to cents.
func NewProduct(id, name string, price decimal.Decimal) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(id, name string, price decimal.Decimal) (*Product, error) {
	return NewProduct(id, name, price)
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id == other.id
}

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	money, err := kernel.NewMoney(price)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	p.price = money
	return nil
}
