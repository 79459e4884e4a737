package kernel

import (
	"delivery-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fraction digits kept by Money.
const MoneyScale = 2

// MaxMoney is the largest amount a NUMERIC(10,2) column holds.
var MaxMoney = decimal.New(9999999999, -MoneyScale)

// Money is an exact, non-negative decimal amount rounded to MoneyScale digits.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney rounds amount to MoneyScale digits and rejects values outside [0, MaxMoney].
func NewMoney(amount decimal.Decimal) (Money, error) {
	rounded := amount.Round(MoneyScale)
	if rounded.IsNegative() || rounded.GreaterThan(MaxMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", MaxMoney.String())
	}
	return Money{amount: rounded}, nil
}

// MoneyFromString parses a decimal string such as "29.99".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoney is NewMoney that panics on error. Intended for literals in tests and fixtures.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func ZeroMoney() Money {
	return Money{}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns m multiplied by a non-negative quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// ExceedsMax reports whether m is above MaxMoney. Sums built with Add or Mul can get there.
func (m Money) ExceedsMax() bool {
	return m.amount.GreaterThan(MaxMoney)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with exactly MoneyScale fraction digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// IsEqual compares by value, so 5.5 and 5.50 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// MarshalJSON renders the amount as a JSON number with two fraction digits (10.10).
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both quoted and bare JSON numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
