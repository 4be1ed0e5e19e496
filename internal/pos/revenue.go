package pos

import (
	"github.com/rs/zerolog"

	"github.com/noah-isme/kasir/internal/money"
	"github.com/noah-isme/kasir/internal/payment"
)

// RevenueView accumulates the income of every settled purchase and logs
// the running figure. It implements payment.Observer.
type RevenueView struct {
	log   zerolog.Logger
	total money.Money
}

// NewRevenueView starts the view at zero in the given currency.
func NewRevenueView(currency string, log zerolog.Logger) *RevenueView {
	return &RevenueView{
		log:   log.With().Str("component", "revenue").Logger(),
		total: money.Zero(currency),
	}
}

// PurchaseRegistered adds the purchase's paid total to the running revenue.
func (v *RevenueView) PurchaseRegistered(p payment.Purchase) {
	v.total = v.total.Add(p.Total.AfterTax)
	v.log.Info().
		Str("sale_total", p.Total.AfterTax.String()).
		Str("revenue", v.total.String()).
		Msg("purchase registered")
}

// Total reports the revenue accumulated so far.
func (v *RevenueView) Total() money.Money {
	return v.total
}
