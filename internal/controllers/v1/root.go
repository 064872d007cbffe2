package v1

import (
	"net/http"

	"github.com/gigbook/backend/internal/httputil"
	"github.com/gigbook/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Forecasts         string `json:"forecasts" example:"https://example.com/api/v1/forecasts"`                   // URL of the forecast endpoint
	ForecastSettings  string `json:"forecastSettings" example:"https://example.com/api/v1/forecast-settings"`   // URL of the forecast setting list endpoint
	ForecastOverrides string `json:"forecastOverrides" example:"https://example.com/api/v1/forecast-overrides"` // URL of the forecast override list endpoint
}

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Forecasts:         url + "/v1/forecasts",
			ForecastSettings:  url + "/v1/forecast-settings",
			ForecastOverrides: url + "/v1/forecast-overrides",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
