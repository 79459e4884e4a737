package order

import (
	"errors"
	"iter"
	"slices"
	"strings"

	"delivery-api/internal/core/domain/model/kernel"
	"delivery-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxItemQuantity caps the quantity of a single line.
const MaxItemQuantity = 1000

// Item is an immutable order line. The unit price is a snapshot of the product price
// taken when the order was placed.
type Item struct {
	productID string
	quantity  int
	unitPrice kernel.Money
}

// NewItem validates every field and reports all failures at once.
func NewItem(productID string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	var item Item
	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) ProductID() string {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice is unitPrice x quantity.
func (i Item) TotalPrice() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}

func (i *Item) setProductID(productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	price, err := kernel.NewMoney(unitPrice)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", err)
	}
	i.unitPrice = price
	return nil
}

// Items is a read-only view over the lines of an order.
type Items struct {
	items []Item
}

func (v Items) Len() int {
	return len(v.items)
}

// At panics if i is out of range, like slice indexing.
func (v Items) At(i int) Item {
	return v.items[i]
}

// All iterates over the lines in order.
func (v Items) All() iter.Seq2[int, Item] {
	return slices.All(v.items)
}

// Slice returns a copy that the caller may modify freely.
func (v Items) Slice() []Item {
	return slices.Clone(v.items)
}
