package discount

import (
	"time"

	"github.com/noah-isme/kasir/internal/common"
	"github.com/noah-isme/kasir/internal/sale"
)

// Composite runs a caller-owned set of rules as one unit. IsApplicable
// evaluates every member rule against the same sale and customer and
// collects the applicable subset; Apply then re-evaluates and applies the
// collected rules in registration order, each rule's discount computed on
// the sale already discounted by the previous one. Composition is
// sequential, not commutative.
type Composite struct {
	rules      []Rule
	applicable []Rule
	saleInfo   sale.Snapshot
	customer   Customer
	checked    bool
}

// NewComposite builds a composite over the given rules. More rules can be
// registered with AddRule before the first evaluation.
func NewComposite(rules ...Rule) *Composite {
	return &Composite{rules: rules}
}

// AddRule registers a rule. Registration order is the application order.
func (c *Composite) AddRule(rule Rule) {
	c.rules = append(c.rules, rule)
}

// IsApplicable evaluates every registered rule against the sale and the
// customer at the given instant, and reports whether at least one rule
// applies. Evaluating an empty composite is a usage fault and panics.
func (c *Composite) IsApplicable(saleInfo sale.Snapshot, customer Customer, now time.Time) bool {
	if len(c.rules) == 0 {
		panic(common.NewUsageFault("IsApplicable", "AddRule"))
	}
	c.saleInfo = saleInfo
	c.customer = customer
	c.applicable = nil
	for _, rule := range c.rules {
		if rule.isApplicable(newApplier(saleInfo, customer), now) {
			c.applicable = append(c.applicable, rule)
		}
	}
	c.checked = true
	return len(c.applicable) > 0
}

// Apply applies every rule collected by the preceding IsApplicable call, in
// registration order, feeding each rule's resulting snapshot into the next.
// Applying before a successful applicability check is a usage fault and
// panics.
func (c *Composite) Apply(now time.Time) sale.Snapshot {
	if !c.checked || len(c.applicable) == 0 {
		panic(common.NewUsageFault("Apply", "IsApplicable"))
	}
	for _, rule := range c.applicable {
		app := newApplier(c.saleInfo, c.customer)
		rule.isApplicable(app, now)
		rule.apply(app)
		c.saleInfo = app.sale()
	}
	return c.saleInfo
}
