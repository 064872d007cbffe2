package v1

import (
	"net/http"

	"github.com/gigbook/backend/internal/httputil"
	"github.com/gigbook/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterForecastSettingRoutes registers the routes for expense forecast
// settings with the RouterGroup that is passed.
func RegisterForecastSettingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsForecastSettingList)
		r.GET("", GetForecastSettings)
		r.POST("", CreateForecastSettings)
	}

	// Setting with ID
	{
		r.OPTIONS("/:id", OptionsForecastSettingDetail)
		r.DELETE("/:id", DeleteForecastSetting)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forecast Settings
// @Success		204
// @Router			/v1/forecast-settings [options]
func OptionsForecastSettingList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forecast Settings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/forecast-settings/{id} [options]
func OptionsForecastSettingDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.ExpenseForecastSetting{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Create forecast settings
// @Description	Creates new expense forecast settings. Each category can only have one setting
// @Tags			Forecast Settings
// @Accept			json
// @Produce		json
// @Success		201			{object}	ForecastSettingCreateResponse
// @Failure		400			{object}	ForecastSettingCreateResponse
// @Failure		500			{object}	ForecastSettingCreateResponse
// @Param			settings	body		[]ForecastSettingEditable	true	"Settings"
// @Router			/v1/forecast-settings [post]
func CreateForecastSettings(c *gin.Context) {
	var editables []ForecastSettingEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForecastSettingCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ForecastSettingCreateResponse{}

	for _, editable := range editables {
		setting := editable.model()

		err = models.DB.Create(&setting).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newForecastSetting(c, setting)
		r.Data = append(r.Data, ForecastSettingResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get forecast settings
// @Description	Returns all expense forecast settings, ordered by category
// @Tags			Forecast Settings
// @Produce		json
// @Success		200	{object}	ForecastSettingListResponse
// @Failure		500	{object}	ForecastSettingListResponse
// @Router			/v1/forecast-settings [get]
func GetForecastSettings(c *gin.Context) {
	var settings []models.ExpenseForecastSetting
	err := models.DB.Order("category ASC").Find(&settings).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ForecastSettingListResponse{
			Error: &s,
		})
		return
	}

	data := make([]ForecastSetting, 0, len(settings))
	for _, setting := range settings {
		data = append(data, newForecastSetting(c, setting))
	}

	c.JSON(http.StatusOK, ForecastSettingListResponse{Data: data})
}

// @Summary		Delete forecast setting
// @Description	Deletes an expense forecast setting. The category falls back to its historical average
// @Tags			Forecast Settings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/forecast-settings/{id} [delete]
func DeleteForecastSetting(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var setting models.ExpenseForecastSetting
	err = models.DB.First(&setting, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Settings are removed permanently so that the category can be configured again
	err = models.DB.Unscoped().Delete(&setting).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
