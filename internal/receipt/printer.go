// Package receipt renders finalized payments as printable receipt text.
package receipt

import (
	"fmt"
	"io"
	"strings"

	"github.com/noah-isme/kasir/internal/payment"
)

const lineWidth = 48

// Format renders the receipt as plain text, one sale line per product in
// insertion order.
func Format(r payment.Receipt) string {
	var b strings.Builder

	divider := strings.Repeat("=", lineWidth)
	b.WriteString(divider + "\n")
	b.WriteString(center(r.Store.Name) + "\n")
	b.WriteString(center(r.Store.Address.Street) + "\n")
	b.WriteString(center(r.Store.Address.PostalCode+" "+r.Store.Address.City) + "\n")
	b.WriteString(divider + "\n")
	b.WriteString("Sale started: " + r.Sale.Time.Format("2006-01-02 15:04") + "\n")
	b.WriteString(strings.Repeat("-", lineWidth) + "\n")

	for _, line := range r.Sale.Lines {
		b.WriteString(abbreviate(line.Product.Name, lineWidth) + "\n")
		unit := line.Product.Price.AfterTax()
		total := unit.MulValue(line.Quantity.Value())
		detail := fmt.Sprintf("  %s x %s/%s", line.Quantity, unit, line.Quantity.Unit().Abbrev())
		b.WriteString(pad(detail, total.String()) + "\n")
	}

	b.WriteString(strings.Repeat("-", lineWidth) + "\n")
	b.WriteString(pad("Total items:", fmt.Sprintf("%d", r.Sale.TotalPieces)) + "\n")
	if !r.TotalDiscount.IsZero() {
		b.WriteString(pad("Total discount:", r.TotalDiscount.String()) + "\n")
	}
	b.WriteString(pad("Total excl. VAT:", r.Purchase.Total.BeforeTax.String()) + "\n")
	b.WriteString(pad("VAT:", r.Purchase.Total.Tax.String()) + "\n")
	b.WriteString(pad("TOTAL:", r.Purchase.Total.AfterTax.String()) + "\n")
	b.WriteString(pad("Paid:", r.Purchase.AmountPaid.String()) + "\n")
	b.WriteString(pad("Change:", r.Purchase.Change.String()) + "\n")
	b.WriteString(divider + "\n")
	b.WriteString("Receipt " + r.ID.String() + "\n")
	b.WriteString("Issued  " + r.IssuedAt.Format("2006-01-02 15:04:05") + "\n")

	return b.String()
}

// Printer writes formatted receipts to an output device.
type Printer struct {
	Out io.Writer
}

// Print renders and writes the receipt.
func (p *Printer) Print(r payment.Receipt) error {
	if _, err := io.WriteString(p.Out, Format(r)); err != nil {
		return fmt.Errorf("receipt: print: %w", err)
	}
	return nil
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	return strings.Repeat(" ", (lineWidth-len(s))/2) + s
}

func pad(left, right string) string {
	gap := lineWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func abbreviate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
