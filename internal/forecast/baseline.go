package forecast

import (
	"strings"

	"github.com/gigbook/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Baselines are the per-month rates a forecast is built from.
type Baselines struct {
	CourseRevenue     Amounts            `json:"courseRevenue"`     // Average course revenue over the baseline months with data
	MembershipRevenue Amounts            `json:"membershipRevenue"` // Average historical membership revenue. Informational, income uses RecurringRevenue
	RecurringRevenue  Amounts            `json:"recurringRevenue"`  // Monthly recurring revenue of all active subscriptions
	Expenses          map[string]Amounts `json:"expenses"`          // Average expenses per category over the baseline months with data
	MonthsWithData    int                `json:"monthsWithData" example:"3"`
}

// Average computes the baselines from the n calendar months before current.
//
// Months without a snapshot are left out of the average entirely, so the
// divisor is the number of months with data. Without any data, all
// baselines are zero.
func Average(h History, current types.Month, n int) Baselines {
	b := Baselines{
		Expenses: make(map[string]Amounts),
	}

	var course, membership Amounts
	expenses := make(map[string]Amounts)

	for i := 1; i <= n; i++ {
		s, ok := h.Get(current.AddDate(0, -i))
		if !ok {
			continue
		}

		b.MonthsWithData++
		course = course.Add(s.CourseRevenue)
		membership = membership.Add(s.MembershipRevenue)
		for category, amount := range s.Expenses {
			expenses[category] = expenses[category].Add(amount)
		}
	}

	b.CourseRevenue = course.Div(b.MonthsWithData)
	b.MembershipRevenue = membership.Div(b.MonthsWithData)
	for category, amount := range expenses {
		b.Expenses[category] = amount.Div(b.MonthsWithData)
	}

	return b
}

// PlanType is the billing period of a subscription.
type PlanType int

const (
	PlanUnsupported PlanType = iota
	PlanMonthly
	PlanAnnual
)

// ParsePlanType maps a stored plan type to a PlanType.
func ParsePlanType(s string) PlanType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return PlanMonthly
	case "annual":
		return PlanAnnual
	}
	return PlanUnsupported
}

var monthsPerYear = decimal.NewFromInt(12)

// Monthly converts an amount billed with this plan type into its monthly
// equivalent. It reports false for unsupported plan types.
func (p PlanType) Monthly(amount decimal.Decimal) (decimal.Decimal, bool) {
	switch p {
	case PlanMonthly:
		return amount, true
	case PlanAnnual:
		return amount.Div(monthsPerYear), true
	}
	return decimal.Zero, false
}

// RecurringRevenue sums the monthly equivalent of all subscriptions.
func RecurringRevenue(subscriptions []Subscription, skipped *Skipped) Amounts {
	var mrr Amounts

	for _, s := range subscriptions {
		monthly, ok := ParsePlanType(s.PlanType).Monthly(s.Amount)
		if !ok {
			log.Warn().Str("planType", s.PlanType).Msg("subscription with unsupported plan type excluded from recurring revenue")
			skipped.UnsupportedPlanType++
			continue
		}

		cur, err := recordCurrency(s.Currency)
		if err != nil {
			skipped.UnsupportedCurrency++
			continue
		}

		mrr = mrr.Add(Single(cur, monthly))
	}

	return mrr
}
