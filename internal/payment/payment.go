// Package payment finalizes a sale into a purchase record with change,
// updates the register balance, and notifies purchase observers.
package payment

import (
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/kasir/internal/common"
	"github.com/noah-isme/kasir/internal/money"
	"github.com/noah-isme/kasir/internal/register"
	"github.com/noah-isme/kasir/internal/sale"
	"github.com/noah-isme/kasir/internal/store"
)

// StoreInfo supplies the store identity printed on receipts.
type StoreInfo interface {
	Info() store.Info
}

// Observer is notified synchronously, in registration order, once a
// payment has been finalized. Observers registered after Pay has run
// receive nothing for that sale.
type Observer interface {
	PurchaseRegistered(Purchase)
}

// Purchase is the once-only record of a completed payment.
type Purchase struct {
	Total      money.PriceTotal
	AmountPaid money.Money
	Change     money.Money
}

// Receipt combines the store identity, the purchase record, the total
// discount, and the snapshot of the finalized sale.
type Receipt struct {
	ID            uuid.UUID
	IssuedAt      time.Time
	Store         store.Info
	Purchase      Purchase
	TotalDiscount money.Money
	Sale          sale.Snapshot
}

// Payment finalizes one sale. StartPayment supplies the sale, Pay settles
// it; the same Payment is not re-enterable once paid. Calling Pay before
// StartPayment, or a second time, is a usage fault and panics.
type Payment struct {
	stores        StoreInfo
	register      *register.Register
	observers     []Observer
	saleState     *sale.Snapshot
	totalDiscount money.Money
	now           func() time.Time
	paid          bool
}

// New builds a payment handler over the store-information source and the
// register the paid amount goes into.
func New(stores StoreInfo, reg *register.Register) *Payment {
	return &Payment{stores: stores, register: reg, now: time.Now}
}

// AddObserver registers an observer for the finalized purchase.
func (p *Payment) AddObserver(observer Observer) {
	p.observers = append(p.observers, observer)
}

// StartPayment sets the sale to settle. The total discount defaults to
// zero in the sale's currency.
func (p *Payment) StartPayment(saleState sale.Snapshot) {
	p.saleState = &saleState
	p.totalDiscount = money.Zero(saleState.RunningTotal.Currency())
}

// SetTotalDiscount records the discount figure shown on the receipt.
func (p *Payment) SetTotalDiscount(amount money.Money) {
	p.totalDiscount = amount
}

// Pay settles the started sale: it accumulates the final price breakdown
// line by line, computes the change (which may go negative; underpayment
// is deliberately not rejected here), adds the after-tax total to the
// register, and notifies every observer in registration order.
func (p *Payment) Pay(amountPaid money.Money) Receipt {
	if p.saleState == nil {
		panic(common.NewUsageFault("Pay", "StartPayment"))
	}
	if p.paid {
		panic(common.NewUsageFault("Pay", "a new Payment (sale already settled)"))
	}
	p.paid = true

	finalPrice := p.finalPrice()
	purchase := Purchase{
		Total:      finalPrice,
		AmountPaid: amountPaid,
		Change:     amountPaid.Sub(finalPrice.AfterTax),
	}
	receipt := Receipt{
		ID:            uuid.New(),
		IssuedAt:      p.now(),
		Store:         p.stores.Info(),
		Purchase:      purchase,
		TotalDiscount: p.totalDiscount,
		Sale:          *p.saleState,
	}
	p.register.Add(finalPrice.AfterTax)
	for _, observer := range p.observers {
		observer.PurchaseRegistered(purchase)
	}
	return receipt
}

// finalPrice accumulates before-tax, after-tax, and tax totals over the
// lines independently. The tax total is never derived from the other two
// at the top level: once discounts have altered individual line prices,
// only the per-line accumulation matches the printed lines exactly.
func (p *Payment) finalPrice() money.PriceTotal {
	currency := p.saleState.RunningTotal.Currency()
	total := money.PriceTotal{
		AfterTax:  money.Zero(currency),
		BeforeTax: money.Zero(currency),
		Tax:       money.Zero(currency),
	}
	for _, line := range p.saleState.Lines {
		qty := line.Quantity.Value()
		total.BeforeTax = total.BeforeTax.Add(line.Product.Price.BeforeTax().MulValue(qty))
		total.AfterTax = total.AfterTax.Add(line.Product.Price.AfterTax().MulValue(qty))
		total.Tax = total.Tax.Add(line.Product.Price.Tax().MulValue(qty))
	}
	return total
}
