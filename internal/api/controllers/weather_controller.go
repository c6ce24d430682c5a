package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shorex/internal/services"
	"shorex/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// GetForecast godoc
// @Summary Get a daily forecast
// @Description Get the forecast for a location on a date. Dates beyond the
// @Description provider's horizon return an unavailable snapshot, not an error.
// @Tags Weather
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/weather [get]
func (w *WeatherController) GetForecast(c *gin.Context) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil || latitude < -90 || latitude > 90 {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrorBody{
			Error:   utils.KindValidationError,
			Message: "latitude must be a number between -90 and 90.",
		})
		return
	}

	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil || longitude < -180 || longitude > 180 {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrorBody{
			Error:   utils.KindValidationError,
			Message: "longitude must be a number between -180 and 180.",
		})
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrorBody{
			Error:   utils.KindValidationError,
			Message: "date must be in YYYY-MM-DD format.",
		})
		return
	}

	snapshot, err := w.weatherService.GetForecast(c.Request.Context(), latitude, longitude, date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, snapshot, "Forecast retrieved successfully")
}
