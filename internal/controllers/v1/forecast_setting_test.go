package v1_test

import (
	"net/http"

	v1 "github.com/gigbook/backend/internal/controllers/v1"
	"github.com/gigbook/backend/internal/models"
	"github.com/gigbook/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestSetting(editable v1.ForecastSettingEditable, admin map[string]string) v1.ForecastSetting {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecast-settings", []v1.ForecastSettingEditable{editable}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ForecastSettingCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Data)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestForecastSettingCreateAndList() {
	admin := test.Admin(suite.T())

	software := suite.createTestSetting(v1.ForecastSettingEditable{Category: "software", BaselineAmount: decimal.NewFromInt(120), BaselineCurrency: "gbp", Frequency: models.FrequencyAnnual}, admin)
	suite.Assert().Equal("GBP", software.BaselineCurrency)
	suite.Assert().Equal("http://example.com/v1/forecast-settings/"+software.ID.String(), software.Links.Self)

	rent := suite.createTestSetting(v1.ForecastSettingEditable{Category: "rent", BaselineAmount: decimal.NewFromInt(800), BaselineCurrency: "EUR"}, admin)
	suite.Assert().Equal(models.FrequencyMonthly, rent.Frequency, "frequency defaults to monthly")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast-settings", "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ForecastSettingListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal("rent", list.Data[0].Category)
	suite.Assert().Equal("software", list.Data[1].Category)
}

func (suite *TestSuiteStandard) TestForecastSettingCreateFails() {
	admin := test.Admin(suite.T())
	_ = suite.createTestSetting(v1.ForecastSettingEditable{Category: "software", BaselineAmount: decimal.NewFromInt(10), BaselineCurrency: "GBP"}, admin)

	tests := []struct {
		name     string
		editable v1.ForecastSettingEditable
		err      error
	}{
		{"Duplicate category", v1.ForecastSettingEditable{Category: "software", BaselineCurrency: "GBP"}, models.ErrSettingCategoryNotUnique},
		{"Empty category", v1.ForecastSettingEditable{Category: " ", BaselineCurrency: "GBP"}, models.ErrSettingCategoryEmpty},
		{"Unsupported currency", v1.ForecastSettingEditable{Category: "rent", BaselineCurrency: "JPY"}, models.ErrUnsupportedCurrency},
		{"Unsupported frequency", v1.ForecastSettingEditable{Category: "rent", BaselineCurrency: "GBP", Frequency: "weekly"}, models.ErrUnsupportedFrequency},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecast-settings", []v1.ForecastSettingEditable{tt.editable}, admin)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			var response v1.ForecastSettingCreateResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Require().Len(response.Data, 1)
			suite.Assert().Equal(tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestForecastSettingCreateEmptyBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forecast-settings", "", test.Admin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("the request body must not be empty", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestForecastSettingDelete() {
	admin := test.Admin(suite.T())
	setting := suite.createTestSetting(v1.ForecastSettingEditable{Category: "software", BaselineAmount: decimal.NewFromInt(10), BaselineCurrency: "GBP"}, admin)

	r := test.Request(suite.T(), http.MethodOptions, setting.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodDelete, setting.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, setting.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "there is no expense forecast setting matching your query")

	// The category can be configured again
	_ = suite.createTestSetting(v1.ForecastSettingEditable{Category: "software", BaselineAmount: decimal.NewFromInt(20), BaselineCurrency: "GBP"}, admin)
}

func (suite *TestSuiteStandard) TestForecastSettingInvalidID() {
	admin := test.Admin(suite.T())

	for _, method := range []string{http.MethodOptions, http.MethodDelete} {
		r := test.Request(suite.T(), method, "http://example.com/v1/forecast-settings/not-a-uuid", "", admin)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestForecastSettingListDatabaseError() {
	admin := test.Admin(suite.T())
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast-settings", "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
