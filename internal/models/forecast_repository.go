package models

import (
	"context"
	"time"

	"github.com/gigbook/backend/internal/forecast"
	"gorm.io/gorm"
)

// ForecastRepository reads the forecast inputs from the database.
type ForecastRepository struct {
	DB *gorm.DB
}

var _ forecast.Repository = ForecastRepository{}

func (r ForecastRepository) CompletedOrders(ctx context.Context, since time.Time) ([]forecast.Order, error) {
	var orders []Order
	err := r.DB.WithContext(ctx).
		Where(&Order{Status: OrderCompleted}).
		Where("date >= ?", since.UTC()).
		Order("date ASC").
		Find(&orders).
		Error
	if err != nil {
		return nil, err
	}

	return convert(orders, Order.forecast), nil
}

// ExpenseTransactions returns all transactions since the given time that have
// a category. Filtering by amount and category value happens in the forecast.
func (r ForecastRepository) ExpenseTransactions(ctx context.Context, since time.Time) ([]forecast.Transaction, error) {
	var transactions []FinancialTransaction
	err := r.DB.WithContext(ctx).
		Where("date >= ?", since.UTC()).
		Where("category IS NOT NULL").
		Order("date ASC").
		Find(&transactions).
		Error
	if err != nil {
		return nil, err
	}

	return convert(transactions, FinancialTransaction.forecast), nil
}

func (r ForecastRepository) ActiveSubscriptions(ctx context.Context) ([]forecast.Subscription, error) {
	var subscriptions []Subscription
	err := r.DB.WithContext(ctx).
		Where(&Subscription{Status: SubscriptionActive}).
		Find(&subscriptions).
		Error
	if err != nil {
		return nil, err
	}

	return convert(subscriptions, Subscription.forecast), nil
}

func (r ForecastRepository) Settings(ctx context.Context) ([]forecast.Setting, error) {
	var settings []ExpenseForecastSetting
	err := r.DB.WithContext(ctx).
		Order("category ASC").
		Find(&settings).
		Error
	if err != nil {
		return nil, err
	}

	return convert(settings, ExpenseForecastSetting.forecast), nil
}

// Overrides returns all overrides, oldest first so that newer ones win
// when they target the same cell.
func (r ForecastRepository) Overrides(ctx context.Context) ([]forecast.Override, error) {
	var overrides []ForecastOverride
	err := r.DB.WithContext(ctx).
		Order("created_at ASC").
		Find(&overrides).
		Error
	if err != nil {
		return nil, err
	}

	return convert(overrides, ForecastOverride.forecast), nil
}

func convert[M any, F any](records []M, fn func(M) F) []F {
	result := make([]F, 0, len(records))
	for _, r := range records {
		result = append(result, fn(r))
	}
	return result
}
