package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/gigbook/backend/internal/controllers/v1"
	"github.com/gigbook/backend/internal/forecast"
	"github.com/gigbook/backend/internal/models"
	"github.com/gigbook/backend/internal/types"
	"github.com/gigbook/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestOverride(editable v1.ForecastOverrideEditable, admin map[string]string) v1.ForecastOverride {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecast-overrides", []v1.ForecastOverrideEditable{editable}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ForecastOverrideCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Data)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestForecastOverrideCreateAndFilter() {
	admin := test.Admin(suite.T())
	november := types.NewMonth(2026, time.November)
	december := types.NewMonth(2026, time.December)

	income := suite.createTestOverride(v1.ForecastOverrideEditable{Month: november, Type: forecast.OverrideIncome, Category: ptr("ignored"), Amount: decimal.NewFromInt(900), Currency: "GBP"}, admin)
	suite.Assert().Nil(income.Category, "income overrides have no category")
	suite.Assert().Equal("2026-11", income.Month.String())

	_ = suite.createTestOverride(v1.ForecastOverrideEditable{Month: december, Type: "Expense", Category: ptr("venue"), Amount: decimal.NewFromInt(50), Currency: "usd"}, admin)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast-overrides", "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ForecastOverrideListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal(income.ID, list.Data[0].ID, "overrides are listed oldest first")

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast-overrides?month=2026-12", "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(forecast.OverrideExpense, list.Data[0].Type)
	suite.Assert().Equal("USD", list.Data[0].Currency)
}

func (suite *TestSuiteStandard) TestForecastOverrideInvalidMonthFilter() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast-overrides?month=11-2026", "", test.Admin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("the month must be in YYYY-MM format", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestForecastOverrideCreateFails() {
	admin := test.Admin(suite.T())
	month := types.NewMonth(2026, time.November)

	tests := []struct {
		name string
		body string
		err  string
	}{
		{"No month", `[{ "type": "income", "amount": "10", "currency": "GBP" }]`, models.ErrOverrideMonthMissing.Error()},
		{"Expense without category", `[{ "month": "2026-11", "type": "expense", "amount": "10", "currency": "GBP" }]`, models.ErrOverrideCategoryMissing.Error()},
		{"Unknown type", `[{ "month": "2026-11", "type": "refund", "amount": "10", "currency": "GBP" }]`, models.ErrUnsupportedOverrideType.Error()},
		{"Unknown currency", `[{ "month": "2026-11", "type": "income", "amount": "10", "currency": "CHF" }]`, models.ErrUnsupportedCurrency.Error()},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecast-overrides", tt.body, admin)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			var response v1.ForecastOverrideCreateResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Require().Len(response.Data, 1)
			suite.Assert().Equal(tt.err, *response.Data[0].Error)
		})
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.ForecastOverride{}).Where("month = ?", month).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestForecastOverrideDelete() {
	admin := test.Admin(suite.T())
	override := suite.createTestOverride(v1.ForecastOverrideEditable{Month: types.NewMonth(2026, time.November), Type: forecast.OverrideIncome, Amount: decimal.NewFromInt(10), Currency: "EUR"}, admin)

	r := test.Request(suite.T(), http.MethodOptions, override.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodDelete, override.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodOptions, override.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
