package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/gigbook/backend/internal/controllers/v1"
	"github.com/gigbook/backend/internal/forecast"
	"github.com/gigbook/backend/internal/models"
	"github.com/gigbook/backend/internal/types"
	"github.com/gigbook/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestForecastAuthorization() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecasts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecasts", "", test.Token(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "restricted to administrators")
}

func (suite *TestSuiteStandard) TestForecastOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/forecasts", "", test.Admin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestForecastEmpty() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecasts", "", test.Admin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Nil(response.Error)
	suite.Require().Len(response.Forecasts, 12)
	suite.Assert().Equal(types.MonthOf(time.Now()).String(), response.Forecasts[0].Key)
	suite.Assert().False(response.Forecasts[0].IsActual)

	for _, f := range response.Forecasts {
		suite.Assert().True(f.Income.IsZero(), "month %s", f.Key)
		suite.Assert().True(f.ProfitLoss.IsZero(), "month %s", f.Key)
		suite.Assert().Empty(f.ExpensesByCategory)
	}
}

func (suite *TestSuiteStandard) TestForecastMonths() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecasts", v1.ForecastRequest{Months: ptr(3)}, test.Admin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Forecasts, 3)
}

func (suite *TestSuiteStandard) TestForecastInvalidRequest() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Zero months", v1.ForecastRequest{Months: ptr(0)}, forecast.ErrInvalidHorizon.Error()},
		{"Too many months", v1.ForecastRequest{Months: ptr(61)}, forecast.ErrInvalidHorizon.Error()},
		{"Broken body", `{ "months": `, "the body of your request contains invalid or un-parseable data"},
		{"Wrong type", `{ "months": "twelve" }`, "cannot unmarshal"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/forecasts", tt.body, test.Admin(t))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestForecastWithData() {
	current := types.MonthOf(time.Now())
	previous := time.Time(current.AddDate(0, -1)).AddDate(0, 0, 4)

	suite.Require().Nil(models.DB.Create(&models.Order{Status: models.OrderCompleted, Amount: decimal.NewFromInt(300), Currency: ptr("USD"), ProductType: "course", Date: previous}).Error)
	suite.Require().Nil(models.DB.Create(&models.Subscription{Status: models.SubscriptionActive, Amount: decimal.NewFromInt(1200), Currency: ptr("GBP"), PlanType: "annual"}).Error)
	suite.Require().Nil(models.DB.Create(&models.ExpenseForecastSetting{Category: "software", BaselineAmount: decimal.NewFromInt(120), BaselineCurrency: "GBP", Frequency: models.FrequencyAnnual}).Error)
	suite.Require().Nil(models.DB.Create(&models.ForecastOverride{Month: current.AddDate(0, 1), Type: forecast.OverrideExpense, Category: ptr("venue"), Amount: decimal.NewFromInt(50), Currency: "GBP"}).Error)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecasts", v1.ForecastRequest{Months: ptr(2)}, test.Admin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Forecasts, 2)

	first, second := response.Forecasts[0], response.Forecasts[1]

	suite.Assert().Equal("300", first.CourseRevenue.USD.String())
	suite.Assert().Equal("100", first.MembershipRevenue.GBP.String())
	suite.Assert().Equal("10", first.ExpensesByCategory["software"].GBP.String())
	suite.Assert().Equal("90", first.ProfitLoss.GBP.String())
	suite.Assert().False(first.HasOverride)

	suite.Assert().True(second.HasOverride)
	suite.Assert().Equal("50", second.ExpensesByCategory["venue"].GBP.String())
	suite.Assert().Equal("40", second.ProfitLoss.GBP.String())

	suite.Assert().Equal(1, response.Baselines.MonthsWithData)
}

func (suite *TestSuiteStandard) TestForecastSkipped() {
	current := types.MonthOf(time.Now())
	previous := time.Time(current.AddDate(0, -1)).AddDate(0, 0, 2)

	suite.Require().Nil(models.DB.Create(&models.Order{Status: models.OrderCompleted, Amount: decimal.NewFromInt(300), Currency: ptr("JPY"), ProductType: "course", Date: previous}).Error)
	suite.Require().Nil(models.DB.Create(&models.FinancialTransaction{Amount: decimal.NewFromInt(-20), Category: ptr("internal_transfer"), Date: previous}).Error)
	suite.Require().Nil(models.DB.Create(&models.Subscription{Status: models.SubscriptionActive, Amount: decimal.NewFromInt(10), Currency: ptr("GBP"), PlanType: "weekly"}).Error)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecasts", "", test.Admin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(1, response.Skipped.UnsupportedCurrency)
	suite.Assert().Equal(1, response.Skipped.IgnoredCategory)
	suite.Assert().Equal(1, response.Skipped.UnsupportedPlanType)
}

func (suite *TestSuiteStandard) TestForecastDatabaseClosed() {
	admin := test.Admin(suite.T())
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecasts", "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
