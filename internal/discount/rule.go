// Package discount evaluates and applies discount rules against a sale
// snapshot and a customer profile, producing a new sale state.
package discount

import (
	"time"
)

// Customer is the profile a rule is evaluated against.
type Customer struct {
	Name      string
	BirthDate time.Time
}

// Kind tags a rule variant.
type Kind string

const (
	// KindSenior is a flat percentage off the entire sale for customers
	// above a minimum age.
	KindSenior Kind = "senior"
	// KindSummer is a per-line percentage for lines whose product name
	// contains a configured substring, within a calendar window.
	KindSummer Kind = "summer"
)

// SeniorParams configures a senior rule.
type SeniorParams struct {
	MinAgeYears int
	Percent     float64
}

// SummerParams configures a summer rule. The window is year-relative:
// month/day bounds are resolved against the year of the evaluation instant,
// with the end day inclusive. NameContains maps lowercase substrings of
// product names to discount percentages.
type SummerParams struct {
	StartMonth   time.Month
	StartDay     int
	EndMonth     time.Month
	EndDay       int
	NameContains map[string]float64
}

// Rule is one discount rule as a tagged variant: exactly the payload named
// by Kind is meaningful. Rules are plain values; evaluation state lives in
// the Composite that runs them.
type Rule struct {
	Kind   Kind
	Senior SeniorParams
	Summer SummerParams
}

// NewSeniorRule builds a senior rule.
func NewSeniorRule(params SeniorParams) Rule {
	return Rule{Kind: KindSenior, Senior: params}
}

// NewSummerRule builds a summer rule.
func NewSummerRule(params SummerParams) Rule {
	return Rule{Kind: KindSummer, Summer: params}
}

// isApplicable prepares the applier for the rule and evaluates the rule's
// predicates at the given instant.
func (r Rule) isApplicable(app *applier, now time.Time) bool {
	switch r.Kind {
	case KindSenior:
		cutoff := now.AddDate(-r.Senior.MinAgeYears, 0, 0)
		return app.customerBornBefore(cutoff)
	case KindSummer:
		app.setNameContains(r.Summer.NameContains)
		start, end := r.Summer.window(now)
		return app.withinPeriod(start, end, now) && app.hasApplicableLine()
	default:
		return false
	}
}

// apply runs the rule's discount on the applier's sale. The applier must
// have been prepared by isApplicable for the same rule.
func (r Rule) apply(app *applier) {
	switch r.Kind {
	case KindSenior:
		app.applyFullSale(r.Senior.Percent)
	case KindSummer:
		app.applyPerLine()
	}
}

// window resolves the calendar bounds against the year of now. The end is
// the start of the day after EndDay, making the whole last day eligible.
func (p SummerParams) window(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), p.StartMonth, p.StartDay, 0, 0, 0, 0, now.Location())
	end = time.Date(now.Year(), p.EndMonth, p.EndDay, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return start, end
}
