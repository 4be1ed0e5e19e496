package money

// percentMultiplier converts a percentage to a plain multiplier.
const percentMultiplier = 0.01

// Price derives the after-tax amount and the tax amount from a before-tax
// amount and a flat VAT rate. All three values are fixed at construction;
// a discounted price is always a new Price built from a reduced before-tax
// amount, never an in-place change.
type Price struct {
	beforeTax Money
	afterTax  Money
	tax       Money
	vatRate   float64
}

// NewPrice builds a Price from a before-tax amount and a VAT rate percent.
func NewPrice(beforeTax Money, vatRatePct float64) Price {
	tax := beforeTax.MulValue(percentMultiplier * vatRatePct)
	return Price{
		beforeTax: beforeTax,
		afterTax:  beforeTax.Add(tax),
		tax:       tax,
		vatRate:   vatRatePct,
	}
}

// BeforeTax returns the amount prior to VAT.
func (p Price) BeforeTax() Money {
	return p.beforeTax
}

// AfterTax returns the amount inclusive of VAT.
func (p Price) AfterTax() Money {
	return p.afterTax
}

// Tax returns the VAT amount.
func (p Price) Tax() Money {
	return p.tax
}

// VATRate returns the VAT rate in percent.
func (p Price) VATRate() float64 {
	return p.vatRate
}

// Discounted builds a new Price from the before-tax amount reduced by the
// given percentage, keeping the original VAT rate.
func (p Price) Discounted(percent float64) Price {
	reduction := p.beforeTax.MulValue(percentMultiplier * percent)
	return NewPrice(p.beforeTax.Sub(reduction), p.vatRate)
}

// PriceTotal combines the independent totals of many accumulated prices.
type PriceTotal struct {
	AfterTax  Money
	BeforeTax Money
	Tax       Money
}
