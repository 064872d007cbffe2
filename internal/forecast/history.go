package forecast

import (
	"strings"
	"time"

	"github.com/gigbook/backend/internal/types"
)

// Snapshot holds the observed totals for one historical month.
type Snapshot struct {
	Month             types.Month
	CourseRevenue     Amounts
	MembershipRevenue Amounts
	Expenses          map[string]Amounts
}

// History maps a month key (YYYY-MM) to the snapshot for that month.
// Only months with at least one matching record are present.
type History map[string]*Snapshot

// Get returns the snapshot for a month, if there is one.
func (h History) Get(m types.Month) (*Snapshot, bool) {
	s, ok := h[m.String()]
	return s, ok
}

func (h History) snapshot(t time.Time) *Snapshot {
	month := types.MonthOf(t.UTC())

	s, ok := h[month.String()]
	if !ok {
		s = &Snapshot{
			Month:    month,
			Expenses: make(map[string]Amounts),
		}
		h[month.String()] = s
	}
	return s
}

// recordCurrency resolves the currency of a record. Empty codes
// fall back to DefaultCurrency.
func recordCurrency(code string) (Currency, error) {
	if strings.TrimSpace(code) == "" {
		return DefaultCurrency, nil
	}
	return ParseCurrency(code)
}

// Aggregate buckets orders and expense transactions by month.
//
// Orders are membership revenue when their product type matches
// Options.MembershipProductTypes and course revenue otherwise.
// Transactions only count when they are debits with a category
// that is not ignored. The expense is the absolute amount.
func Aggregate(orders []Order, transactions []Transaction, opts Options, skipped *Skipped) History {
	h := make(History)

	for _, o := range orders {
		cur, err := recordCurrency(o.Currency)
		if err != nil {
			skipped.UnsupportedCurrency++
			continue
		}

		s := h.snapshot(o.Date)
		amount := Single(cur, o.Amount)
		if opts.isMembership(o.ProductType) {
			s.MembershipRevenue = s.MembershipRevenue.Add(amount)
		} else {
			s.CourseRevenue = s.CourseRevenue.Add(amount)
		}
	}

	for _, t := range transactions {
		category := strings.TrimSpace(t.Category)
		if category == "" {
			skipped.Uncategorized++
			continue
		}

		if opts.isIgnoredCategory(category) {
			skipped.IgnoredCategory++
			continue
		}

		// Credits are not expenses
		if !t.Amount.IsNegative() {
			continue
		}

		cur, err := recordCurrency(t.Currency)
		if err != nil {
			skipped.UnsupportedCurrency++
			continue
		}

		s := h.snapshot(t.Date)
		s.Expenses[category] = s.Expenses[category].Add(Single(cur, t.Amount.Abs()))
	}

	return h
}
