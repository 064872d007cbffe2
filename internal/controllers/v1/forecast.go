package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gigbook/backend/internal/config"
	"github.com/gigbook/backend/internal/forecast"
	"github.com/gigbook/backend/internal/httputil"
	"github.com/gigbook/backend/internal/metrics"
	"github.com/gigbook/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// forecastConfig is set when the routes are registered.
var forecastConfig = config.DefaultForecast()

// RegisterForecastRoutes registers the routes for forecasts with
// the RouterGroup that is passed.
func RegisterForecastRoutes(r *gin.RouterGroup, cfg config.Forecast) {
	forecastConfig = cfg

	r.OPTIONS("", OptionsForecasts)
	r.POST("", CreateForecast)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forecasts
// @Success		204
// @Router			/v1/forecasts [options]
func OptionsForecasts(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Generate forecast
// @Description	Computes the income, expense and profit/loss forecast for the current and the following months, per currency
// @Tags			Forecasts
// @Accept			json
// @Produce		json
// @Success		200		{object}	ForecastResponse
// @Failure		400		{object}	ForecastResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	ForecastResponse
// @Param			request	body		ForecastRequest	false	"Forecast parameters"
// @Router			/v1/forecasts [post]
func CreateForecast(c *gin.Context) {
	var request ForecastRequest

	err := httputil.BindData(c, &request)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(status(err), ForecastResponse{Error: &s})
		return
	}

	start := time.Now()
	opts := forecastConfig.Options(start, request.Months)

	result, err := forecast.Generate(c.Request.Context(), models.ForecastRepository{DB: models.DB}, opts)
	elapsed := time.Since(start)
	metrics.ObserveForecast(metrics.Result(err), elapsed, result.Skipped)

	if err != nil {
		if status(err) == http.StatusInternalServerError {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("forecast")
		}

		s := err.Error()
		c.JSON(status(err), ForecastResponse{Error: &s})
		return
	}

	event := log.Debug()
	if result.Skipped.Total() > 0 {
		event = log.Warn()
	}
	event.Str("request-id", requestid.Get(c)).
		Int("months", opts.Months).
		Dur("duration", elapsed).
		Interface("skipped", result.Skipped.Reasons()).
		Msg("forecast")

	c.JSON(http.StatusOK, ForecastResponse{Result: &result})
}
