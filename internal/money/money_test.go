package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTruncatesFractionBelowTwoDigits(t *testing.T) {
	m := New(10.999, "SEK")
	assert.Equal(t, "10.99 SEK", m.String())
}

func TestRoundingIsIdempotent(t *testing.T) {
	m := New(7.119, "SEK")
	again := NewFromDecimal(m.Amount(), "SEK")
	require.True(t, m.Equal(again))
}

func TestArithmeticReturnsNewValues(t *testing.T) {
	base := New(100, "SEK")
	sum := base.AddValue(0.50)
	assert.Equal(t, "100.00 SEK", base.String())
	assert.Equal(t, "100.50 SEK", sum.String())

	diff := sum.Sub(New(0.25, "SEK"))
	assert.Equal(t, "100.25 SEK", diff.String())

	product := base.MulValue(0.333)
	assert.Equal(t, "33.30 SEK", product.String())
}

func TestDivTruncatesQuotient(t *testing.T) {
	m := New(10, "SEK")
	quot, err := m.DivValue(3)
	require.NoError(t, err)
	assert.Equal(t, "3.33 SEK", quot.String())
}

func TestDivByZero(t *testing.T) {
	m := New(10, "SEK")
	_, err := m.DivValue(0)
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = m.Div(Zero("SEK"))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEqualRequiresSameCurrency(t *testing.T) {
	assert.True(t, New(9.90, "SEK").Equal(New(9.90, "SEK")))
	assert.False(t, New(9.90, "SEK").Equal(New(9.90, "EUR")))
	assert.False(t, New(9.90, "SEK").Equal(New(9.91, "SEK")))
}

func TestZero(t *testing.T) {
	z := Zero("SEK")
	assert.True(t, z.IsZero())
	assert.False(t, z.IsNegative())
	assert.Equal(t, "0.00 SEK", z.String())
}

func TestNegativeAmountsAllowed(t *testing.T) {
	change := New(200, "SEK").Sub(New(225, "SEK"))
	assert.True(t, change.IsNegative())
	assert.Equal(t, "-25.00 SEK", change.String())
}

func TestNewFromDecimal(t *testing.T) {
	d := decimal.RequireFromString("12.345")
	m := NewFromDecimal(d, "SEK")
	assert.Equal(t, "12.34 SEK", m.String())
}
