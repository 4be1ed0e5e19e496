package pos

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kasir/internal/accounting"
	"github.com/noah-isme/kasir/internal/catalog"
	"github.com/noah-isme/kasir/internal/config"
	"github.com/noah-isme/kasir/internal/discount"
	"github.com/noah-isme/kasir/internal/money"
	"github.com/noah-isme/kasir/internal/payment"
	"github.com/noah-isme/kasir/internal/quantity"
	"github.com/noah-isme/kasir/internal/receipt"
	"github.com/noah-isme/kasir/internal/register"
	"github.com/noah-isme/kasir/internal/store"
)

var saleInstant = time.Date(2026, time.March, 3, 14, 30, 0, 0, time.UTC)

func newService(out *bytes.Buffer) *Service {
	log := zerolog.Nop()
	return &Service{
		Catalog:    catalog.NewRegistry("SEK", log),
		Stores:     store.NewRegistry(),
		Accounting: accounting.NewRegistry(log),
		Register:   register.New(money.New(1000, "SEK")),
		Printer:    &receipt.Printer{Out: out},
		Log:        log,
		Currency:   "SEK",
		Now:        func() time.Time { return saleInstant },
	}
}

func TestRegisterItemRequiresStartedSale(t *testing.T) {
	svc := newService(&bytes.Buffer{})

	_, err := svc.RegisterItem(1, quantity.New(1))
	assert.ErrorIs(t, err, ErrNoActiveSale)
}

func TestRegisterItemUnknownProduct(t *testing.T) {
	svc := newService(&bytes.Buffer{})
	svc.StartSale()

	_, err := svc.RegisterItem(12345, quantity.New(1))
	require.ErrorIs(t, err, ErrUnknownProduct)

	var unknown *UnknownProductError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 12345, unknown.ID)
}

func TestRegisterItemBackendUnavailable(t *testing.T) {
	svc := newService(&bytes.Buffer{})
	svc.StartSale()

	_, err := svc.RegisterItem(catalog.UnavailableProductID, quantity.New(1))
	assert.ErrorIs(t, err, catalog.ErrUnavailable)
}

func TestSaleFlow(t *testing.T) {
	out := &bytes.Buffer{}
	svc := newService(out)
	revenue := NewRevenueView("SEK", zerolog.Nop())
	svc.Observers = []payment.Observer{revenue}

	svc.StartSale()

	// Product 1: 1.07 before tax at 6% VAT, 1.13 each after tax.
	snap, err := svc.RegisterItem(1, quantity.New(2))
	require.NoError(t, err)
	assert.Equal(t, "2.26 SEK", snap.RunningTotal.String())

	// Product 2: 2.14 before tax at 12% VAT, 2.39 after tax.
	snap, err = svc.RegisterItem(2, quantity.New(1))
	require.NoError(t, err)
	assert.Equal(t, "4.65 SEK", snap.RunningTotal.String())

	rcpt, err := svc.Pay(money.New(10, "SEK"))
	require.NoError(t, err)

	assert.Equal(t, "4.65 SEK", rcpt.Purchase.Total.AfterTax.String())
	assert.Equal(t, "5.35 SEK", rcpt.Purchase.Change.String())
	assert.Equal(t, "1004.65 SEK", svc.Register.Balance().String())
	assert.Equal(t, "4.65 SEK", revenue.Total().String())
	assert.Contains(t, out.String(), "TOTAL:")
	assert.Contains(t, out.String(), "The Leftorium")

	// The sale is settled; further operations need a new one.
	_, err = svc.Pay(money.New(1, "SEK"))
	assert.ErrorIs(t, err, ErrNoActiveSale)
}

func TestDiscountedPayment(t *testing.T) {
	out := &bytes.Buffer{}
	svc := newService(out)
	svc.Rules = []discount.Rule{
		discount.NewSeniorRule(discount.SeniorParams{MinAgeYears: 65, Percent: 10}),
	}

	svc.StartSale()
	_, err := svc.RegisterItem(50, quantity.New(3))
	require.NoError(t, err)

	senior := discount.Customer{
		Name:      "Abe Simpson",
		BirthDate: saleInstant.AddDate(-80, 0, 0),
	}
	result, err := svc.TryDiscount(senior)
	require.NoError(t, err)
	require.True(t, result.Applied())
	assert.InDelta(t, 10, result.Percent, 0.2)

	rcpt, err := svc.Pay(money.New(200, "SEK"))
	require.NoError(t, err)

	assert.True(t, rcpt.TotalDiscount.Equal(result.Amount))
	assert.True(t, rcpt.Purchase.Total.AfterTax.Equal(result.After.RunningTotal))
	assert.Contains(t, out.String(), "Total discount:")
}

func TestTryDiscountWithoutRules(t *testing.T) {
	svc := newService(&bytes.Buffer{})
	svc.StartSale()
	_, err := svc.RegisterItem(7, quantity.New(1))
	require.NoError(t, err)

	result, err := svc.TryDiscount(discount.Customer{Name: "Walk-in"})
	require.NoError(t, err)
	assert.False(t, result.Applied())
	assert.True(t, result.Before.RunningTotal.Equal(result.After.RunningTotal))
}

func TestTryDiscountRequiresStartedSale(t *testing.T) {
	svc := newService(&bytes.Buffer{})

	_, err := svc.TryDiscount(discount.Customer{Name: "Anyone"})
	assert.ErrorIs(t, err, ErrNoActiveSale)
}

func TestRulesFrom(t *testing.T) {
	cfg := &config.Config{
		SeniorMinAge:       65,
		SeniorPercent:      10,
		SummerStart:        config.MonthDay{Month: time.May, Day: 1},
		SummerEnd:          config.MonthDay{Month: time.August, Day: 31},
		SummerNameContains: map[string]float64{"drink": 10, "strawberry": 5},
	}

	rules := RulesFrom(cfg)
	require.Len(t, rules, 2)
	assert.Equal(t, discount.KindSummer, rules[0].Kind)
	assert.Equal(t, discount.KindSenior, rules[1].Kind)
	assert.Equal(t, 65, rules[1].Senior.MinAgeYears)
	assert.Equal(t, map[string]float64{"drink": 10, "strawberry": 5}, rules[0].Summer.NameContains)
}

func TestRevenueViewAccumulates(t *testing.T) {
	view := NewRevenueView("SEK", zerolog.Nop())

	view.PurchaseRegistered(purchaseOf(100))
	view.PurchaseRegistered(purchaseOf(19.90))

	assert.Equal(t, "119.90 SEK", view.Total().String())
}

func purchaseOf(amount float64) payment.Purchase {
	total := money.New(amount, "SEK")
	return payment.Purchase{
		Total:      money.PriceTotal{AfterTax: total, BeforeTax: total, Tax: money.Zero("SEK")},
		AmountPaid: total,
		Change:     money.Zero("SEK"),
	}
}

func TestFailedLookupLeavesSaleUntouched(t *testing.T) {
	svc := newService(&bytes.Buffer{})
	svc.StartSale()

	snap, err := svc.RegisterItem(3, quantity.New(1))
	require.NoError(t, err)
	before := snap.RunningTotal

	_, err = svc.RegisterItem(0, quantity.New(1))
	require.ErrorIs(t, err, ErrUnknownProduct)

	assert.True(t, svc.current.RunningTotal().Equal(before))
}
