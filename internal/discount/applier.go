package discount

import (
	"strings"
	"time"

	"github.com/noah-isme/kasir/internal/money"
	"github.com/noah-isme/kasir/internal/sale"
)

// applier is the per-rule working engine: it holds one sale snapshot and
// one customer, tests rule predicates against them, and rewrites the sale's
// lines when a discount applies. After either apply operation the running
// total is recomputed from the (possibly partially) discounted line list.
type applier struct {
	saleInfo     sale.Snapshot
	customer     Customer
	nameContains map[string]float64
}

func newApplier(saleInfo sale.Snapshot, customer Customer) *applier {
	return &applier{saleInfo: saleInfo, customer: customer}
}

// setNameContains installs the lowercase substring -> percent lookup table.
func (a *applier) setNameContains(table map[string]float64) {
	a.nameContains = table
}

// sale returns the sale info with any applied discounts.
func (a *applier) sale() sale.Snapshot {
	return a.saleInfo
}

// withinPeriod reports whether now falls in [start, end).
func (a *applier) withinPeriod(start, end, now time.Time) bool {
	return !now.Before(start) && now.Before(end)
}

// customerBornBefore reports whether the customer was born before cutoff.
func (a *applier) customerBornBefore(cutoff time.Time) bool {
	return cutoff.After(a.customer.BirthDate)
}

// hasApplicableLine reports whether any line's product name matches an
// entry of the lookup table.
func (a *applier) hasApplicableLine() bool {
	for _, line := range a.saleInfo.Lines {
		if _, ok := a.bestMatch(line.Product.Name); ok {
			return true
		}
	}
	return false
}

// bestMatch finds the table entry with the highest percentage among those
// whose substring occurs in the (case-insensitively compared) name.
// Registration order does not break ties; the highest percentage wins.
func (a *applier) bestMatch(name string) (float64, bool) {
	lower := strings.ToLower(name)
	best, found := 0.0, false
	for substr, percent := range a.nameContains {
		if !strings.Contains(lower, substr) {
			continue
		}
		if !found || percent > best {
			best = percent
			found = true
		}
	}
	return best, found
}

// applyPerLine discounts only the lines matching the lookup table, each at
// its best matching percentage, and updates the sale snapshot.
func (a *applier) applyPerLine() {
	lines := make([]sale.LineView, 0, len(a.saleInfo.Lines))
	for _, line := range a.saleInfo.Lines {
		if percent, ok := a.bestMatch(line.Product.Name); ok {
			line.Product.Price = line.Product.Price.Discounted(percent)
		}
		lines = append(lines, line)
	}
	a.replaceLines(lines)
}

// applyFullSale discounts every line by the same percentage and updates the
// sale snapshot.
func (a *applier) applyFullSale(percent float64) {
	lines := make([]sale.LineView, 0, len(a.saleInfo.Lines))
	for _, line := range a.saleInfo.Lines {
		line.Product.Price = line.Product.Price.Discounted(percent)
		lines = append(lines, line)
	}
	a.replaceLines(lines)
}

func (a *applier) replaceLines(lines []sale.LineView) {
	a.saleInfo = sale.Snapshot{
		ID:           a.saleInfo.ID,
		Time:         a.saleInfo.Time,
		RunningTotal: recomputeTotal(lines, a.saleInfo.RunningTotal.Currency()),
		Lines:        lines,
		TotalPieces:  a.saleInfo.TotalPieces,
	}
}

func recomputeTotal(lines []sale.LineView, currency string) money.Money {
	total := money.Zero(currency)
	for _, line := range lines {
		total = total.Add(line.Product.Price.AfterTax().MulValue(line.Quantity.Value()))
	}
	return total
}
