// Package pos coordinates the sale process between the caller, the model,
// and the external collaborators.
package pos

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/kasir/internal/accounting"
	"github.com/noah-isme/kasir/internal/catalog"
	"github.com/noah-isme/kasir/internal/config"
	"github.com/noah-isme/kasir/internal/discount"
	"github.com/noah-isme/kasir/internal/money"
	"github.com/noah-isme/kasir/internal/payment"
	"github.com/noah-isme/kasir/internal/quantity"
	"github.com/noah-isme/kasir/internal/receipt"
	"github.com/noah-isme/kasir/internal/register"
	"github.com/noah-isme/kasir/internal/sale"
)

var (
	// ErrNoActiveSale is returned when operating on a sale before StartSale.
	ErrNoActiveSale = errors.New("pos: no active sale")
	// ErrUnknownProduct is returned when the scanned id matches no product.
	ErrUnknownProduct = errors.New("pos: unknown product")
)

// UnknownProductError carries the offending product id.
type UnknownProductError struct {
	ID int
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("pos: unknown product id %d", e.ID)
}

// Unwrap makes the error match ErrUnknownProduct.
func (e *UnknownProductError) Unwrap() error {
	return ErrUnknownProduct
}

// Service owns one in-progress sale at a time and wires it to the
// collaborators. Not safe for concurrent use.
type Service struct {
	Catalog    *catalog.Registry
	Stores     payment.StoreInfo
	Accounting *accounting.Registry
	Register   *register.Register
	Rules      []discount.Rule
	Printer    *receipt.Printer
	Observers  []payment.Observer
	Log        zerolog.Logger
	Currency   string
	Now        func() time.Time

	current  *sale.Sale
	lastDisc *discount.Result
}

// RulesFrom builds the discount rule set described by the configuration,
// summer before senior to match the reference registry ordering.
func RulesFrom(cfg *config.Config) []discount.Rule {
	return []discount.Rule{
		discount.NewSummerRule(discount.SummerParams{
			StartMonth:   cfg.SummerStart.Month,
			StartDay:     cfg.SummerStart.Day,
			EndMonth:     cfg.SummerEnd.Month,
			EndDay:       cfg.SummerEnd.Day,
			NameContains: cfg.SummerNameContains,
		}),
		discount.NewSeniorRule(discount.SeniorParams{
			MinAgeYears: cfg.SeniorMinAge,
			Percent:     cfg.SeniorPercent,
		}),
	}
}

// StartSale begins a new sale, discarding any unfinished one.
func (s *Service) StartSale() {
	s.current = sale.New(s.now(), s.Currency)
	s.lastDisc = nil
	s.Log.Info().Msg("sale started")
}

// RegisterItem looks the product up and merges it into the ongoing sale.
// An id that matches no product is a business-rule failure; a backend
// outage surfaces as the catalog's unavailability error.
func (s *Service) RegisterItem(id int, qty quantity.Quantity) (sale.Snapshot, error) {
	if s.current == nil {
		return sale.Snapshot{}, ErrNoActiveSale
	}
	exists, err := s.Catalog.Exists(id)
	if err != nil {
		return sale.Snapshot{}, fmt.Errorf("pos: product lookup: %w", err)
	}
	if !exists {
		return sale.Snapshot{}, &UnknownProductError{ID: id}
	}
	product, err := s.Catalog.Info(id)
	if err != nil {
		return sale.Snapshot{}, fmt.Errorf("pos: product lookup: %w", err)
	}
	snap, err := s.current.AddItem(product, qty)
	if err != nil {
		return sale.Snapshot{}, err
	}
	s.Log.Debug().Int("product_id", id).Str("total", snap.RunningTotal.String()).
		Msg("item registered")
	return snap, nil
}

// TryDiscount evaluates the configured rules against the ongoing sale for
// the given customer. An applied discount replaces the sale state used by
// the subsequent payment.
func (s *Service) TryDiscount(customer discount.Customer) (discount.Result, error) {
	if s.current == nil {
		return discount.Result{}, ErrNoActiveSale
	}
	snap := s.current.Snapshot()
	if len(s.Rules) == 0 {
		return discount.Result{
			Before: snap,
			After:  snap,
			Amount: money.Zero(s.Currency),
		}, nil
	}
	handler := discount.New(discount.NewComposite(s.Rules...))
	handler.Start(snap)
	result := handler.Try(customer, s.now())
	s.lastDisc = &result
	if result.Applied() {
		s.Log.Info().Str("amount", result.Amount.String()).
			Float64("percent", result.Percent).Msg("discount applied")
	}
	return result, nil
}

// Pay settles the ongoing sale: it finalizes the payment against the
// (possibly discounted) sale state, books the sale, updates the inventory,
// prints the receipt, and closes the sale.
func (s *Service) Pay(amountPaid money.Money) (payment.Receipt, error) {
	if s.current == nil {
		return payment.Receipt{}, ErrNoActiveSale
	}
	saleState := s.current.Snapshot()
	p := payment.New(s.Stores, s.Register)
	for _, observer := range s.Observers {
		p.AddObserver(observer)
	}
	p.StartPayment(s.settledState(saleState))
	if s.lastDisc != nil {
		p.SetTotalDiscount(s.lastDisc.Amount)
	}
	rcpt := p.Pay(amountPaid)

	s.Accounting.Bookkeep(rcpt.Sale)
	s.Catalog.Stocktake(rcpt.Sale)
	if s.Printer != nil {
		if err := s.Printer.Print(rcpt); err != nil {
			return payment.Receipt{}, err
		}
	}
	s.current.Close()
	s.current = nil
	s.lastDisc = nil
	s.Log.Info().Str("paid", amountPaid.String()).
		Str("change", rcpt.Purchase.Change.String()).Msg("sale settled")
	return rcpt, nil
}

func (s *Service) settledState(fallback sale.Snapshot) sale.Snapshot {
	if s.lastDisc != nil {
		return s.lastDisc.After
	}
	return fallback
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
