package v1

import (
	"net/http"

	"github.com/gigbook/backend/internal/httputil"
	"github.com/gigbook/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterForecastOverrideRoutes registers the routes for forecast
// overrides with the RouterGroup that is passed.
func RegisterForecastOverrideRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsForecastOverrideList)
		r.GET("", GetForecastOverrides)
		r.POST("", CreateForecastOverrides)
	}

	// Override with ID
	{
		r.OPTIONS("/:id", OptionsForecastOverrideDetail)
		r.DELETE("/:id", DeleteForecastOverride)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forecast Overrides
// @Success		204
// @Router			/v1/forecast-overrides [options]
func OptionsForecastOverrideList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forecast Overrides
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/forecast-overrides/{id} [options]
func OptionsForecastOverrideDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.ForecastOverride{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Create forecast overrides
// @Description	Creates new overrides. If multiple overrides target the same month, type and category, the most recent one is used
// @Tags			Forecast Overrides
// @Accept			json
// @Produce		json
// @Success		201			{object}	ForecastOverrideCreateResponse
// @Failure		400			{object}	ForecastOverrideCreateResponse
// @Failure		500			{object}	ForecastOverrideCreateResponse
// @Param			overrides	body		[]ForecastOverrideEditable	true	"Overrides"
// @Router			/v1/forecast-overrides [post]
func CreateForecastOverrides(c *gin.Context) {
	var editables []ForecastOverrideEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForecastOverrideCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ForecastOverrideCreateResponse{}

	for _, editable := range editables {
		override := editable.model()

		err = models.DB.Create(&override).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newForecastOverride(c, override)
		r.Data = append(r.Data, ForecastOverrideResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get forecast overrides
// @Description	Returns forecast overrides, oldest first
// @Tags			Forecast Overrides
// @Produce		json
// @Success		200		{object}	ForecastOverrideListResponse
// @Failure		400		{object}	ForecastOverrideListResponse
// @Failure		500		{object}	ForecastOverrideListResponse
// @Param			month	query		string	false	"Filter by month (YYYY-MM)"
// @Router			/v1/forecast-overrides [get]
func GetForecastOverrides(c *gin.Context) {
	month, ok, err := httputil.QueryMonth(c, "month")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ForecastOverrideListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("created_at ASC")
	if ok {
		q = q.Where("month = ?", month)
	}

	var overrides []models.ForecastOverride
	err = q.Find(&overrides).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ForecastOverrideListResponse{
			Error: &s,
		})
		return
	}

	data := make([]ForecastOverride, 0, len(overrides))
	for _, override := range overrides {
		data = append(data, newForecastOverride(c, override))
	}

	c.JSON(http.StatusOK, ForecastOverrideListResponse{Data: data})
}

// @Summary		Delete forecast override
// @Description	Deletes a forecast override
// @Tags			Forecast Overrides
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/forecast-overrides/{id} [delete]
func DeleteForecastOverride(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var override models.ForecastOverride
	err = models.DB.First(&override, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Unscoped().Delete(&override).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
