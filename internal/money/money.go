// Package money provides fixed-precision monetary values and tax-aware
// prices. All arithmetic in the sale process routes through Money.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned when dividing a Money value by zero.
var ErrDivisionByZero = errors.New("money: division by zero")

// scale is the number of fractional digits every Money value carries.
const scale = 2

// Money is an exact decimal amount tagged with a currency code. Values are
// immutable; every operation returns a new Money. The magnitude is truncated
// to two fractional digits on construction, which keeps repeated discount
// and tax arithmetic reproducible (no drift from rounding to nearest).
type Money struct {
	amount   decimal.Decimal
	currency string
}

// New builds a Money from a raw number, truncated to two decimals.
func New(value float64, currency string) Money {
	return fromDecimal(decimal.NewFromFloat(value), currency)
}

// NewFromDecimal builds a Money from a decimal, truncated to two decimals.
func NewFromDecimal(value decimal.Decimal, currency string) Money {
	return fromDecimal(value, currency)
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Money {
	return fromDecimal(decimal.Zero, currency)
}

func fromDecimal(value decimal.Decimal, currency string) Money {
	return Money{amount: value.Truncate(scale), currency: currency}
}

// Amount returns the decimal magnitude.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return fromDecimal(m.amount.Add(other.amount), m.currency)
}

// AddValue returns the sum of m and a raw number.
func (m Money) AddValue(value float64) Money {
	return fromDecimal(m.amount.Add(decimal.NewFromFloat(value)), m.currency)
}

// Sub returns the difference of m and other.
func (m Money) Sub(other Money) Money {
	return fromDecimal(m.amount.Sub(other.amount), m.currency)
}

// SubValue returns the difference of m and a raw number.
func (m Money) SubValue(value float64) Money {
	return fromDecimal(m.amount.Sub(decimal.NewFromFloat(value)), m.currency)
}

// Mul returns the product of m and other.
func (m Money) Mul(other Money) Money {
	return fromDecimal(m.amount.Mul(other.amount), m.currency)
}

// MulValue returns the product of m and a raw number.
func (m Money) MulValue(value float64) Money {
	return fromDecimal(m.amount.Mul(decimal.NewFromFloat(value)), m.currency)
}

// Div returns the quotient of m and other.
func (m Money) Div(other Money) (Money, error) {
	if other.amount.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return fromDecimal(m.amount.Div(other.amount), m.currency), nil
}

// DivValue returns the quotient of m and a raw number.
func (m Money) DivValue(value float64) (Money, error) {
	divisor := decimal.NewFromFloat(value)
	if divisor.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return fromDecimal(m.amount.Div(divisor), m.currency), nil
}

// Equal reports whether both the magnitude and the currency match exactly.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Float64 returns an approximate float representation, for display and
// ratio calculations only.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// String renders the value as "<amount> <currency>" with two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(scale) + " " + m.currency
}
