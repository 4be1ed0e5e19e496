package discount

import (
	"time"

	"github.com/noah-isme/kasir/internal/common"
	"github.com/noah-isme/kasir/internal/money"
	"github.com/noah-isme/kasir/internal/sale"
)

// Result describes the outcome of trying discounts on a sale.
type Result struct {
	Before  sale.Snapshot
	After   sale.Snapshot
	Amount  money.Money
	Percent float64
}

// Applied reports whether any discount changed the total.
func (r Result) Applied() bool {
	return !r.Amount.IsZero()
}

// Discount is the caller-facing orchestrator: Start supplies the sale to
// try discounts on, Try runs the composite rule for a customer. Calling
// Try before Start is a usage fault and panics.
type Discount struct {
	rules    *Composite
	saleInfo *sale.Snapshot
}

// New builds a discount handler over a caller-owned composite rule.
func New(rules *Composite) *Discount {
	return &Discount{rules: rules}
}

// Start sets the sale to try discounts on.
func (d *Discount) Start(saleInfo sale.Snapshot) {
	d.saleInfo = &saleInfo
}

// Try evaluates the composite against the started sale and the customer at
// the given instant, applies any applicable rules, and reports the original
// and discounted sale states together with the discount amount and percent.
func (d *Discount) Try(customer Customer, now time.Time) Result {
	if d.saleInfo == nil {
		panic(common.NewUsageFault("Try", "Start"))
	}
	before := *d.saleInfo
	after := before
	if d.rules.IsApplicable(before, customer, now) {
		after = d.rules.Apply(now)
	}
	amount := before.RunningTotal.Sub(after.RunningTotal)
	return Result{
		Before:  before,
		After:   after,
		Amount:  amount,
		Percent: discountPercent(amount, before.RunningTotal),
	}
}

func discountPercent(amount, originalTotal money.Money) float64 {
	if originalTotal.IsZero() {
		return 0
	}
	ratio := amount.Amount().Div(originalTotal.Amount())
	return ratio.InexactFloat64() * 100
}
