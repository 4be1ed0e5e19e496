package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kasir/internal/money"
	"github.com/noah-isme/kasir/internal/payment"
	"github.com/noah-isme/kasir/internal/quantity"
	"github.com/noah-isme/kasir/internal/sale"
	"github.com/noah-isme/kasir/internal/store"
)

func TestFormatContainsSaleLinesAndTotals(t *testing.T) {
	s := sale.New(time.Date(2026, time.July, 15, 10, 30, 0, 0, time.UTC), "SEK")
	snap, err := s.AddItem(sale.Product{
		ID:    1,
		Name:  "Tasty Chocolate Cereal",
		Price: money.NewPrice(money.New(100, "SEK"), 25),
	}, quantity.New(2))
	require.NoError(t, err)

	r := payment.Receipt{
		ID:       uuid.New(),
		IssuedAt: time.Date(2026, time.July, 15, 10, 35, 0, 0, time.UTC),
		Store:    store.NewRegistry().Info(),
		Purchase: payment.Purchase{
			Total: money.PriceTotal{
				AfterTax:  money.New(250, "SEK"),
				BeforeTax: money.New(200, "SEK"),
				Tax:       money.New(50, "SEK"),
			},
			AmountPaid: money.New(300, "SEK"),
			Change:     money.New(50, "SEK"),
		},
		TotalDiscount: money.Zero("SEK"),
		Sale:          snap,
	}

	text := Format(r)
	assert.Contains(t, text, "The Leftorium")
	assert.Contains(t, text, "Tasty Chocolate Cereal")
	assert.Contains(t, text, "2 pc x 125.00 SEK/pc")
	assert.Contains(t, text, "250.00 SEK")
	assert.Contains(t, text, "Change:")
	// Zero discount is omitted from the receipt.
	assert.NotContains(t, text, "Total discount")
}

func TestPrinterWritesToOutput(t *testing.T) {
	var out strings.Builder
	p := &Printer{Out: &out}
	require.NoError(t, p.Print(payment.Receipt{
		Store:         store.NewRegistry().Info(),
		TotalDiscount: money.Zero("SEK"),
	}))
	assert.Contains(t, out.String(), "TOTAL:")
}
