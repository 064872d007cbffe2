package v1

import (
	"fmt"

	"github.com/gigbook/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ForecastSettingEditable represents all user configurable parameters
type ForecastSettingEditable struct {
	Category         string           `json:"category" example:"software"`                         // Expense category the setting applies to. Unique
	BaselineAmount   decimal.Decimal  `json:"baselineAmount" example:"120" swaggertype:"string"`   // Expected expense per period, as a positive number
	BaselineCurrency string           `json:"baselineCurrency" example:"GBP"`                      // One of GBP, USD, EUR
	Frequency        models.Frequency `json:"frequency" example:"annual" enums:"monthly,annual"`   // How often the expense occurs. Defaults to monthly
	Note             string           `json:"note" example:"Notation software licenses" default:""` // A note about the setting
}

func (editable ForecastSettingEditable) model() models.ExpenseForecastSetting {
	return models.ExpenseForecastSetting{
		Category:         editable.Category,
		BaselineAmount:   editable.BaselineAmount,
		BaselineCurrency: editable.BaselineCurrency,
		Frequency:        editable.Frequency,
		Note:             editable.Note,
	}
}

type ForecastSettingLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/forecast-settings/3b1ea324-d438-4419-882a-2fc91d71772f"` // The setting itself
}

type ForecastSetting struct {
	models.DefaultModel
	ForecastSettingEditable
	Links ForecastSettingLinks `json:"links"`
}

func newForecastSetting(c *gin.Context, model models.ExpenseForecastSetting) ForecastSetting {
	url := c.GetString(string(models.DBContextURL))

	return ForecastSetting{
		DefaultModel: model.DefaultModel,
		ForecastSettingEditable: ForecastSettingEditable{
			Category:         model.Category,
			BaselineAmount:   model.BaselineAmount,
			BaselineCurrency: model.BaselineCurrency,
			Frequency:        model.Frequency,
			Note:             model.Note,
		},
		Links: ForecastSettingLinks{
			Self: fmt.Sprintf("%s/v1/forecast-settings/%s", url, model.ID),
		},
	}
}

type ForecastSettingListResponse struct {
	Data  []ForecastSetting `json:"data"`                                                          // List of settings
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ForecastSettingCreateResponse struct {
	Data  []ForecastSettingResponse `json:"data"`                                                          // List of the created settings or their respective error
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *ForecastSettingCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ForecastSettingResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ForecastSettingResponse struct {
	Data  *ForecastSetting `json:"data"`                                                          // Data for the setting
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
