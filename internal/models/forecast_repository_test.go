package models_test

import (
	"context"
	"time"

	"github.com/gigbook/backend/internal/forecast"
	"github.com/gigbook/backend/internal/models"
	"github.com/gigbook/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRepositoryCompletedOrders() {
	t := suite.T()
	since := time.Date(2026, time.April, 14, 0, 0, 0, 0, time.UTC)

	_ = suite.createTestOrder(models.Order{Status: models.OrderCompleted, Amount: decimal.NewFromInt(10), Currency: ptr("GBP"), ProductType: "course", Date: since.AddDate(0, 1, 0)})
	_ = suite.createTestOrder(models.Order{Status: models.OrderCompleted, Amount: decimal.NewFromInt(20), ProductType: "membership", Date: since.AddDate(0, 2, 0)})
	_ = suite.createTestOrder(models.Order{Status: models.OrderPending, Amount: decimal.NewFromInt(30), ProductType: "course", Date: since.AddDate(0, 1, 0)})
	_ = suite.createTestOrder(models.Order{Status: models.OrderCompleted, Amount: decimal.NewFromInt(40), ProductType: "course", Date: since.AddDate(0, -1, 0)})

	orders, err := models.ForecastRepository{DB: models.DB}.CompletedOrders(context.Background(), since)
	require.Nil(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "GBP", orders[0].Currency)
	assert.True(t, decimal.NewFromInt(10).Equal(orders[0].Amount))
	assert.Equal(t, "", orders[1].Currency, "missing currency stays empty")
	assert.Equal(t, "membership", orders[1].ProductType)
}

func (suite *TestSuiteStandard) TestRepositoryExpenseTransactions() {
	t := suite.T()
	since := time.Date(2026, time.April, 14, 0, 0, 0, 0, time.UTC)

	_ = suite.createTestTransaction(models.FinancialTransaction{Amount: decimal.NewFromInt(-10), Category: ptr("venue"), Date: since.AddDate(0, 0, 1)})
	_ = suite.createTestTransaction(models.FinancialTransaction{Amount: decimal.NewFromInt(-10), Date: since.AddDate(0, 0, 1)})
	_ = suite.createTestTransaction(models.FinancialTransaction{Amount: decimal.NewFromInt(-10), Category: ptr("venue"), Date: since.AddDate(0, 0, -1)})

	transactions, err := models.ForecastRepository{DB: models.DB}.ExpenseTransactions(context.Background(), since)
	require.Nil(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "venue", transactions[0].Category)
}

func (suite *TestSuiteStandard) TestRepositoryActiveSubscriptions() {
	t := suite.T()

	_ = suite.createTestSubscription(models.Subscription{Status: models.SubscriptionActive, Amount: decimal.NewFromInt(30), Currency: ptr("USD"), PlanType: " Monthly "})
	_ = suite.createTestSubscription(models.Subscription{Status: models.SubscriptionCancelled, Amount: decimal.NewFromInt(30), Currency: ptr("USD"), PlanType: "monthly"})

	subscriptions, err := models.ForecastRepository{DB: models.DB}.ActiveSubscriptions(context.Background())
	require.Nil(t, err)
	require.Len(t, subscriptions, 1)
	assert.Equal(t, "monthly", subscriptions[0].PlanType)
}

func (suite *TestSuiteStandard) TestRepositorySettingsAndOverrides() {
	t := suite.T()

	_ = suite.createTestSetting(models.ExpenseForecastSetting{Category: "software", BaselineAmount: decimal.NewFromInt(120), BaselineCurrency: "gbp", Frequency: models.FrequencyAnnual})
	_ = suite.createTestOverride(models.ForecastOverride{Month: types.NewMonth(2026, time.November), Type: forecast.OverrideIncome, Category: ptr("ignored for income"), Amount: decimal.NewFromInt(5), Currency: "EUR"})

	repo := models.ForecastRepository{DB: models.DB}

	settings, err := repo.Settings(context.Background())
	require.Nil(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "GBP", settings[0].BaselineCurrency)
	assert.Equal(t, "annual", settings[0].Frequency)

	overrides, err := repo.Overrides(context.Background())
	require.Nil(t, err)
	require.Len(t, overrides, 1)
	assert.Nil(t, overrides[0].Category, "income overrides never have a category")
	assert.Equal(t, "2026-11", overrides[0].Month.String())
}

func (suite *TestSuiteStandard) TestRepositoryGenerate() {
	t := suite.T()
	now := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)

	_ = suite.createTestOrder(models.Order{Status: models.OrderCompleted, Amount: decimal.NewFromInt(100), Currency: ptr("USD"), ProductType: "course", Date: time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestOrder(models.Order{Status: models.OrderCompleted, Amount: decimal.NewFromInt(200), Currency: ptr("USD"), ProductType: "course", Date: time.Date(2026, time.July, 2, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestSubscription(models.Subscription{Status: models.SubscriptionActive, Amount: decimal.NewFromInt(1200), Currency: ptr("GBP"), PlanType: "annual"})

	opts := forecast.DefaultOptions(now)
	opts.Months = 2

	result, err := forecast.Generate(context.Background(), models.ForecastRepository{DB: models.DB}, opts)
	require.Nil(t, err)
	require.Len(t, result.Forecasts, 2)

	assert.Equal(t, "150", result.Baselines.CourseRevenue.USD.String())
	assert.Equal(t, "100", result.Baselines.RecurringRevenue.GBP.String())
}

func (suite *TestSuiteStandard) TestRepositoryDatabaseClosed() {
	suite.CloseDB()

	_, err := forecast.Generate(context.Background(), models.ForecastRepository{DB: models.DB}, forecast.DefaultOptions(time.Now()))

	var dataErr *forecast.DataAccessError
	suite.Require().ErrorAs(err, &dataErr)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
