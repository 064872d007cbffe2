// Package forecast projects monthly income, expenses and profit/loss
// from historical orders and transactions, active subscriptions,
// expense settings and manual overrides.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gigbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Order is a completed order. ProductType decides whether it counts as
// membership or course revenue.
type Order struct {
	Amount      decimal.Decimal
	Currency    string
	ProductType string
	Date        time.Time
}

// Transaction is a categorized financial transaction. Debits are negative.
type Transaction struct {
	Amount   decimal.Decimal
	Currency string
	Category string
	Date     time.Time
}

// Subscription is an active recurring-revenue commitment.
type Subscription struct {
	Amount   decimal.Decimal
	Currency string
	PlanType string
}

// Setting configures the expected amount for an expense category.
type Setting struct {
	Category         string
	BaselineAmount   decimal.Decimal
	BaselineCurrency string
	Frequency        string
}

// OverrideType is the kind of forecast cell an Override replaces.
type OverrideType string

const (
	OverrideIncome  OverrideType = "income"
	OverrideExpense OverrideType = "expense"
)

// Override replaces the computed value for a single month and category.
// Income overrides have no category.
type Override struct {
	Month    types.Month
	Category *string
	Type     OverrideType
	Amount   decimal.Decimal
	Currency string
}

// Input is everything Compute needs.
type Input struct {
	Orders        []Order
	Transactions  []Transaction
	Subscriptions []Subscription
	Settings      []Setting
	Overrides     []Override
}

// Repository provides the read-only data sources for a forecast.
type Repository interface {
	CompletedOrders(ctx context.Context, since time.Time) ([]Order, error)
	ExpenseTransactions(ctx context.Context, since time.Time) ([]Transaction, error)
	ActiveSubscriptions(ctx context.Context) ([]Subscription, error)
	Settings(ctx context.Context) ([]Setting, error)
	Overrides(ctx context.Context) ([]Override, error)
}

// Skipped counts input records that did not contribute to the forecast.
type Skipped struct {
	UnsupportedCurrency  int `json:"unsupportedCurrency" example:"0"`  // Records with a currency outside GBP, USD and EUR
	Uncategorized        int `json:"uncategorized" example:"2"`        // Transactions without a category
	IgnoredCategory      int `json:"ignoredCategory" example:"5"`      // Transactions in an ignored category
	UnsupportedPlanType  int `json:"unsupportedPlanType" example:"0"`  // Subscriptions that are neither monthly nor annual
	UnsupportedFrequency int `json:"unsupportedFrequency" example:"0"` // Settings that are neither monthly nor annual
	UnsupportedOverride  int `json:"unsupportedOverride" example:"0"`  // Overrides with an unknown type
}

// Total is the number of skipped records over all reasons.
func (s Skipped) Total() int {
	return s.UnsupportedCurrency + s.Uncategorized + s.IgnoredCategory + s.UnsupportedPlanType + s.UnsupportedFrequency + s.UnsupportedOverride
}

// Reasons returns the counts keyed by a stable reason name.
func (s Skipped) Reasons() map[string]int {
	return map[string]int{
		"unsupported_currency":  s.UnsupportedCurrency,
		"uncategorized":         s.Uncategorized,
		"ignored_category":      s.IgnoredCategory,
		"unsupported_plan_type": s.UnsupportedPlanType,
		"unsupported_frequency": s.UnsupportedFrequency,
		"unsupported_override":  s.UnsupportedOverride,
	}
}

var ErrInvalidHorizon = errors.New("the number of months to forecast is out of range")

// DataAccessError is returned when one of the data sources fails.
// No partial forecast is returned together with it.
type DataAccessError struct {
	Source string
	Err    error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Source, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
