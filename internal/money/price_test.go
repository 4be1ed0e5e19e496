package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPriceDerivesTax(t *testing.T) {
	p := NewPrice(New(100, "SEK"), 25)
	assert.Equal(t, "100.00 SEK", p.BeforeTax().String())
	assert.Equal(t, "25.00 SEK", p.Tax().String())
	assert.Equal(t, "125.00 SEK", p.AfterTax().String())
	assert.Equal(t, 25.0, p.VATRate())
}

func TestNewPriceTruncatesTax(t *testing.T) {
	// 1.07 * 6% = 0.0642, truncated to 0.06.
	p := NewPrice(New(1.07, "SEK"), 6)
	assert.Equal(t, "0.06 SEK", p.Tax().String())
	assert.Equal(t, "1.13 SEK", p.AfterTax().String())
}

func TestDiscountedBuildsNewPrice(t *testing.T) {
	p := NewPrice(New(100, "SEK"), 25)
	d := p.Discounted(10)

	assert.Equal(t, "90.00 SEK", d.BeforeTax().String())
	assert.Equal(t, "112.50 SEK", d.AfterTax().String())
	assert.Equal(t, 25.0, d.VATRate())

	// The original price is untouched.
	assert.Equal(t, "125.00 SEK", p.AfterTax().String())
}
