package v1

import (
	"fmt"

	"github.com/gigbook/backend/internal/forecast"
	"github.com/gigbook/backend/internal/models"
	"github.com/gigbook/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ForecastOverrideEditable represents all user configurable parameters
type ForecastOverrideEditable struct {
	Month    types.Month           `json:"month" example:"2026-11" swaggertype:"string"`           // Month the override applies to
	Category *string               `json:"category" example:"venue"`                               // Expense category. Always null for income overrides
	Type     forecast.OverrideType `json:"type" example:"expense" enums:"income,expense"`          // income replaces course revenue, expense replaces the category expense
	Amount   decimal.Decimal       `json:"amount" example:"450" swaggertype:"string"`              // The amount to use instead of the computed one
	Currency string                `json:"currency" example:"GBP"`                                 // One of GBP, USD, EUR
	Note     string                `json:"note" example:"Larger venue for the showcase" default:""` // A note about the override
}

func (editable ForecastOverrideEditable) model() models.ForecastOverride {
	return models.ForecastOverride{
		Month:    editable.Month,
		Category: editable.Category,
		Type:     editable.Type,
		Amount:   editable.Amount,
		Currency: editable.Currency,
		Note:     editable.Note,
	}
}

type ForecastOverrideLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/forecast-overrides/3b1ea324-d438-4419-882a-2fc91d71772f"` // The override itself
}

type ForecastOverride struct {
	models.DefaultModel
	ForecastOverrideEditable
	Links ForecastOverrideLinks `json:"links"`
}

func newForecastOverride(c *gin.Context, model models.ForecastOverride) ForecastOverride {
	url := c.GetString(string(models.DBContextURL))

	return ForecastOverride{
		DefaultModel: model.DefaultModel,
		ForecastOverrideEditable: ForecastOverrideEditable{
			Month:    model.Month,
			Category: model.Category,
			Type:     model.Type,
			Amount:   model.Amount,
			Currency: model.Currency,
			Note:     model.Note,
		},
		Links: ForecastOverrideLinks{
			Self: fmt.Sprintf("%s/v1/forecast-overrides/%s", url, model.ID),
		},
	}
}

type ForecastOverrideListResponse struct {
	Data  []ForecastOverride `json:"data"`                                        // List of overrides
	Error *string            `json:"error" example:"the month must be in YYYY-MM format"` // The error, if any occurred
}

type ForecastOverrideCreateResponse struct {
	Data  []ForecastOverrideResponse `json:"data"`                                                          // List of the created overrides or their respective error
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *ForecastOverrideCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ForecastOverrideResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ForecastOverrideResponse struct {
	Data  *ForecastOverride `json:"data"`                                                          // Data for the override
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
