package main

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/kasir/internal/accounting"
	"github.com/noah-isme/kasir/internal/catalog"
	"github.com/noah-isme/kasir/internal/config"
	"github.com/noah-isme/kasir/internal/discount"
	"github.com/noah-isme/kasir/internal/money"
	"github.com/noah-isme/kasir/internal/obs"
	"github.com/noah-isme/kasir/internal/payment"
	"github.com/noah-isme/kasir/internal/pos"
	"github.com/noah-isme/kasir/internal/quantity"
	"github.com/noah-isme/kasir/internal/receipt"
	"github.com/noah-isme/kasir/internal/register"
	"github.com/noah-isme/kasir/internal/store"
)

// main runs a scripted sale against the canned collaborators so the whole
// flow can be exercised without a cashier UI.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	errorLog, closeErrorLog, err := obs.NewErrorLogger(cfg.ErrorLogPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("open error log")
	}
	defer func() {
		if err := closeErrorLog(); err != nil {
			logger.Error().Err(err).Msg("close error log")
		}
	}()

	catalogReg := catalog.NewRegistry(cfg.Currency, logger)
	revenue := pos.NewRevenueView(cfg.Currency, logger)

	svc := &pos.Service{
		Catalog:    catalogReg,
		Stores:     store.NewRegistry(),
		Accounting: accounting.NewRegistry(logger),
		Register:   register.New(money.New(cfg.RegisterOpeningBalance, cfg.Currency)),
		Rules:      pos.RulesFrom(cfg),
		Printer:    &receipt.Printer{Out: os.Stdout},
		Observers:  []payment.Observer{revenue},
		Log:        logger,
		Currency:   cfg.Currency,
	}

	svc.StartSale()

	scan(svc, logger, errorLog, 5, quantity.New(1))
	// Scanning the same item again merges into the existing line.
	scan(svc, logger, errorLog, 5, quantity.New(1))
	scan(svc, logger, errorLog, 30, quantity.New(2))
	scan(svc, logger, errorLog, 42, quantity.NewWithUnit(0.5, quantity.Kilogram))

	// An id nobody stocks, then a simulated inventory outage.
	scan(svc, logger, errorLog, 31415, quantity.New(1))
	scan(svc, logger, errorLog, catalog.UnavailableProductID, quantity.New(1))

	senior := discount.Customer{
		Name:      "Abe Simpson",
		BirthDate: time.Date(1946, time.May, 25, 0, 0, 0, 0, time.UTC),
	}
	result, err := svc.TryDiscount(senior)
	if err != nil {
		logger.Fatal().Err(err).Msg("try discount")
	}
	if result.Applied() {
		logger.Info().
			Str("amount", result.Amount.String()).
			Float64("percent", result.Percent).
			Str("customer", senior.Name).
			Msg("discount granted")
	} else {
		logger.Info().Str("customer", senior.Name).Msg("no discount applicable")
	}

	rcpt, err := svc.Pay(money.New(500, cfg.Currency))
	if err != nil {
		logger.Fatal().Err(err).Msg("settle payment")
	}

	logger.Info().
		Str("change", rcpt.Purchase.Change.String()).
		Str("register_balance", svc.Register.Balance().String()).
		Str("revenue", revenue.Total().String()).
		Msg("sale complete")
}

// scan registers one item and reports failures the way a cashier display
// would: unknown ids are an operator-facing warning, a backend outage is
// recorded in the error log for support.
func scan(svc *pos.Service, logger, errorLog zerolog.Logger, id int, qty quantity.Quantity) {
	snap, err := svc.RegisterItem(id, qty)
	switch {
	case errors.Is(err, catalog.ErrUnavailable):
		errorLog.Error().Err(err).Int("product_id", id).Msg("inventory backend unreachable")
		logger.Warn().Int("product_id", id).Msg("could not reach inventory, item skipped")
	case errors.Is(err, pos.ErrUnknownProduct):
		logger.Warn().Int("product_id", id).Msg("no such product")
	case err != nil:
		logger.Error().Err(err).Int("product_id", id).Msg("register item")
	default:
		logger.Info().
			Int("product_id", id).
			Str("running_total", snap.RunningTotal.String()).
			Msg("item scanned")
	}
}
