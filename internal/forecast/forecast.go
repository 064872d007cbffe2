package forecast

import (
	"context"
	"strings"

	"github.com/gigbook/backend/internal/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// MonthlyForecast is the projection for a single month.
type MonthlyForecast struct {
	Month              types.Month        `json:"month" example:"2026-10-01T00:00:00Z"` // The month
	Key                string             `json:"key" example:"2026-10"`                // The month in YYYY-MM format
	Income             Amounts            `json:"income"`                               // Course and membership revenue
	Expenses           Amounts            `json:"expenses"`                             // Sum of all expense categories
	ProfitLoss         Amounts            `json:"profitLoss"`                           // Income minus expenses, may be negative
	CourseRevenue      Amounts            `json:"courseRevenue"`                        // Course revenue, from history or the income override
	MembershipRevenue  Amounts            `json:"membershipRevenue"`                    // Monthly recurring revenue
	ExpensesByCategory map[string]Amounts `json:"expensesByCategory"`                   // Expenses per category. Categories without any expense are omitted
	IsActual           bool               `json:"isActual" example:"true"`              // Is there already recorded data for this month?
	HasOverride        bool               `json:"hasOverride" example:"false"`          // Does any override target this month?
}

// Result is the outcome of a forecast run.
type Result struct {
	Forecasts []MonthlyForecast `json:"forecasts"`
	Baselines Baselines         `json:"baselines"`
	Skipped   Skipped           `json:"skipped"`
}

// Generate reads all inputs from the repository and computes the forecast.
//
// The reads are independent of each other and run concurrently. If any
// of them fails, the whole run fails with a *DataAccessError.
func Generate(ctx context.Context, repo Repository, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	var in Input
	since := opts.Since()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.Orders, err = repo.CompletedOrders(ctx, since)
		return wrapSource("orders", err)
	})
	g.Go(func() (err error) {
		in.Transactions, err = repo.ExpenseTransactions(ctx, since)
		return wrapSource("transactions", err)
	})
	g.Go(func() (err error) {
		in.Subscriptions, err = repo.ActiveSubscriptions(ctx)
		return wrapSource("subscriptions", err)
	})
	g.Go(func() (err error) {
		in.Settings, err = repo.Settings(ctx)
		return wrapSource("settings", err)
	})
	g.Go(func() (err error) {
		in.Overrides, err = repo.Overrides(ctx)
		return wrapSource("overrides", err)
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Compute(in, opts), nil
}

func wrapSource(source string, err error) error {
	if err == nil {
		return nil
	}
	return &DataAccessError{Source: source, Err: err}
}

// Compute projects the forecast from already loaded inputs. A horizon below
// one month yields no forecasts.
func Compute(in Input, opts Options) Result {
	var skipped Skipped
	if opts.Months < 0 {
		opts.Months = 0
	}
	current := types.MonthOf(opts.Now.UTC())

	history := Aggregate(in.Orders, in.Transactions, opts, &skipped)
	baselines := Average(history, current, opts.BaselineMonths)
	baselines.RecurringRevenue = RecurringRevenue(in.Subscriptions, &skipped)
	overrides := IndexOverrides(in.Overrides, &skipped)
	settings := monthlySettings(in.Settings, &skipped)

	forecasts := make([]MonthlyForecast, 0, opts.Months)
	for i := 0; i < opts.Months; i++ {
		month := current.AddDate(0, i)

		f := MonthlyForecast{
			Month:              month,
			Key:                month.String(),
			CourseRevenue:      baselines.CourseRevenue,
			MembershipRevenue:  baselines.RecurringRevenue,
			ExpensesByCategory: make(map[string]Amounts),
			HasOverride:        overrides.HasOverride(month),
		}

		if o, ok := overrides.Income(month); ok {
			f.CourseRevenue = o
		}
		f.Income = f.CourseRevenue.Add(f.MembershipRevenue)

		for _, category := range expenseCategories(settings, baselines, overrides.ExpenseCategories(month)) {
			amount := resolveExpense(month, category, settings, baselines, overrides)
			if amount.IsZero() {
				continue
			}

			f.ExpensesByCategory[category] = amount
			f.Expenses = f.Expenses.Add(amount)
		}

		f.ProfitLoss = f.Income.Sub(f.Expenses)

		if i == 0 {
			_, f.IsActual = history.Get(month)
		}

		forecasts = append(forecasts, f)
	}

	return Result{
		Forecasts: forecasts,
		Baselines: baselines,
		Skipped:   skipped,
	}
}

// resolveExpense picks the amount for a category in a month. An override wins,
// then a configured non-zero setting, then the historical average.
func resolveExpense(month types.Month, category string, settings map[string]Amounts, baselines Baselines, overrides Overrides) Amounts {
	if o, ok := overrides.Expense(month, category); ok {
		return o
	}

	if s, ok := settings[category]; ok && !s.IsZero() {
		return s
	}

	return baselines.Expenses[category]
}

// expenseCategories returns all categories to resolve for a month, sorted.
func expenseCategories(settings map[string]Amounts, baselines Baselines, overridden []string) []string {
	set := make(map[string]struct{}, len(settings)+len(baselines.Expenses)+len(overridden))
	for category := range settings {
		set[category] = struct{}{}
	}
	for category := range baselines.Expenses {
		set[category] = struct{}{}
	}
	for _, category := range overridden {
		set[category] = struct{}{}
	}

	categories := maps.Keys(set)
	slices.Sort(categories)
	return categories
}

// monthlySettings converts settings into monthly amounts per category.
//
// An empty frequency means monthly. Settings with an unsupported currency
// or frequency are skipped, their category then falls back to its
// historical average.
func monthlySettings(settings []Setting, skipped *Skipped) map[string]Amounts {
	result := make(map[string]Amounts, len(settings))

	for _, s := range settings {
		category := strings.TrimSpace(s.Category)
		if category == "" {
			continue
		}

		frequency := PlanMonthly
		if strings.TrimSpace(s.Frequency) != "" {
			frequency = ParsePlanType(s.Frequency)
		}

		monthly, ok := frequency.Monthly(s.BaselineAmount)
		if !ok {
			skipped.UnsupportedFrequency++
			continue
		}

		cur, err := recordCurrency(s.BaselineCurrency)
		if err != nil {
			skipped.UnsupportedCurrency++
			continue
		}

		result[category] = Single(cur, monthly)
	}

	return result
}
