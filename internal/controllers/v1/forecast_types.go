package v1

import "github.com/gigbook/backend/internal/forecast"

// ForecastRequest configures a forecast run. The body is optional.
type ForecastRequest struct {
	Months *int `json:"months" example:"12"` // Number of months to forecast, starting with the current month. Defaults to the configured value
}

type ForecastResponse struct {
	*forecast.Result
	Error *string `json:"error,omitempty" example:"the number of months to forecast is out of range"` // The error, if any occurred
}
